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

func newAuthMock(password string) *auth.ServiceMock {
	return &auth.ServiceMock{
		CheckUserExistsFunc: func(ctx context.Context, email string) bool {
			return models.NormalizeEmail(email) == "laia.puig@patinfly.com"
		},
		LoginFunc: func(ctx context.Context, email, pw string) (*models.User, error) {
			if pw != password {
				return nil, auth.ErrInvalidCredentials
			}
			return &models.User{Name: "Laia Puig", Email: email}, nil
		},
	}
}

func TestCli_runLogin_Interactive(t *testing.T) {
	t.Setenv(PasswordEnv, "")

	var out bytes.Buffer
	mockIO := newTestIO(&out)
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		return "Laia.Puig@patinfly.com", nil
	}
	mockIO.ReadPasswordFunc = func(prompt string) (string, error) {
		return "patinfly2024", nil
	}
	mockAuth := newAuthMock("patinfly2024")

	cli := New(mockIO, mockAuth, &rental.ServiceMock{}, Options{})
	require.NoError(t, cli.Run(context.Background(), "login", nil))

	assert.Contains(t, out.String(), "Login successful")
	assert.Contains(t, out.String(), "Welcome, Laia Puig")

	loginCalls := mockAuth.LoginCalls()
	require.Len(t, loginCalls, 1)
	assert.Equal(t, "Laia.Puig@patinfly.com", loginCalls[0].Email)
	assert.Equal(t, "patinfly2024", loginCalls[0].Password)
}

func TestCli_runLogin_FromOptions(t *testing.T) {
	t.Setenv(PasswordEnv, "")

	var out bytes.Buffer
	mockIO := newTestIO(&out)
	mockAuth := newAuthMock("patinfly2024")

	cli := New(mockIO, mockAuth, &rental.ServiceMock{}, Options{
		Email:     "laia.puig@patinfly.com",
		Passwords: Passwords{FromArgs: "patinfly2024"},
	})
	require.NoError(t, cli.Run(context.Background(), "login", nil))

	assert.Empty(t, mockIO.ReadInputCalls())
	assert.Empty(t, mockIO.ReadPasswordCalls())
}

func TestCli_runLogin_Errors(t *testing.T) {
	t.Setenv(PasswordEnv, "")
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		mockAuth := newAuthMock("patinfly2024")
		cli := New(newTestIO(&bytes.Buffer{}), mockAuth, &rental.ServiceMock{}, Options{
			Email:     "nobody@patinfly.com",
			Passwords: Passwords{FromArgs: "patinfly2024"},
		})

		err := cli.Run(ctx, "login", nil)
		assert.ErrorContains(t, err, "no account found")
		assert.Empty(t, mockAuth.LoginCalls())
	})

	t.Run("wrong password", func(t *testing.T) {
		cli := New(newTestIO(&bytes.Buffer{}), newAuthMock("patinfly2024"), &rental.ServiceMock{}, Options{
			Email:     "laia.puig@patinfly.com",
			Passwords: Passwords{FromArgs: "wrong"},
		})

		err := cli.Run(ctx, "login", nil)
		assert.ErrorContains(t, err, "wrong password")
	})

	t.Run("email input fails", func(t *testing.T) {
		cli := New(newTestIO(&bytes.Buffer{}), newAuthMock("x"), &rental.ServiceMock{}, Options{})

		err := cli.Run(ctx, "login", nil)
		assert.ErrorContains(t, err, "failed to read email")
	})
}
