package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/client/auth"
	"github.com/iudanet/patinfly/internal/client/rental"
	"github.com/iudanet/patinfly/internal/models"
)

func TestCli_runProfile(t *testing.T) {
	ctx := context.Background()
	other := testBike()
	other.ID = "bike-2"
	other.Name = "Patinfly Trail 01"

	mockRental := &rental.ServiceMock{
		ProfileFunc: func(ctx context.Context) (*rental.Profile, error) {
			return &rental.Profile{
				User:    &models.User{Name: "Laia Puig", Email: "laia.puig@patinfly.com"},
				History: []*models.Bike{testBike(), other},
			}, nil
		},
	}

	t.Run("full history", func(t *testing.T) {
		var out bytes.Buffer
		cli := New(newTestIO(&out), &auth.ServiceMock{}, mockRental, Options{})

		require.NoError(t, cli.Run(ctx, "profile", nil))
		s := out.String()
		assert.Contains(t, s, "Email:           laia.puig@patinfly.com")
		assert.Contains(t, s, "Patinfly Urban 01")
		assert.Contains(t, s, "Patinfly Trail 01")
	})

	t.Run("hidden entry", func(t *testing.T) {
		var out bytes.Buffer
		cli := New(newTestIO(&out), &auth.ServiceMock{}, mockRental, Options{})

		require.NoError(t, cli.Run(ctx, "profile", []string{"bike-2"}))
		assert.NotContains(t, out.String(), "Patinfly Trail 01")
	})

	t.Run("no user", func(t *testing.T) {
		failing := &rental.ServiceMock{
			ProfileFunc: func(ctx context.Context) (*rental.Profile, error) {
				return nil, rental.ErrNoCurrentUser
			},
		}
		cli := New(newTestIO(&bytes.Buffer{}), &auth.ServiceMock{}, failing, Options{})

		assert.ErrorIs(t, cli.Run(ctx, "profile", nil), rental.ErrNoCurrentUser)
	})
}

func TestCli_runProfile_EmptyHistory(t *testing.T) {
	var out bytes.Buffer
	mockRental := &rental.ServiceMock{
		ProfileFunc: func(ctx context.Context) (*rental.Profile, error) {
			return &rental.Profile{User: &models.User{Name: "Laia Puig"}, History: []*models.Bike{}}, nil
		},
	}
	cli := New(newTestIO(&out), &auth.ServiceMock{}, mockRental, Options{})

	require.NoError(t, cli.Run(context.Background(), "profile", nil))
	assert.Contains(t, out.String(), "(empty)")
}
