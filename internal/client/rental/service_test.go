package rental

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/client/repository"
	"github.com/iudanet/patinfly/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bike(id, category string, active, rented bool) *models.Bike {
	return &models.Bike{
		ID:       id,
		Name:     "Bike " + id,
		BikeType: models.BikeType{Name: category, Type: category},
		IsActive: active,
		IsRented: rented,
	}
}

// bikesMock репозиторий поверх map, запись изменяет map
func bikesMock(bikes ...*models.Bike) *repository.BikeRepositoryMock {
	byID := make(map[string]*models.Bike, len(bikes))
	for _, b := range bikes {
		byID[b.ID] = b
	}
	return &repository.BikeRepositoryMock{
		GetBikeFunc: func(ctx context.Context, id string) *models.Bike {
			b, ok := byID[id]
			if !ok {
				return nil
			}
			cp := *b
			return &cp
		},
		SetBikeActiveFunc: func(ctx context.Context, id string, active bool) bool {
			b, ok := byID[id]
			if !ok {
				return false
			}
			b.IsActive = active
			return true
		},
		UpdateBikeRentStatusFunc: func(ctx context.Context, b *models.Bike) bool {
			cp := *b
			byID[b.ID] = &cp
			return true
		},
		GetAllFunc: func(ctx context.Context) []*models.Bike {
			return bikes
		},
		BikesByCategoryFunc: func(ctx context.Context, category string) []*models.Bike {
			if category == "" {
				return bikes
			}
			var out []*models.Bike
			for _, b := range bikes {
				if b.HasCategory(category) {
					out = append(out, b)
				}
			}
			return out
		},
	}
}

func newTestService(bikes repository.BikeRepository) Service {
	return NewService(bikes, &repository.UserRepositoryMock{}, &repository.PricingPlanRepositoryMock{}, testLogger())
}

func TestService_Reserve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		bike    *models.Bike
		wantErr error
	}{
		{name: "available", bike: bike("b1", "Urban", true, false)},
		{name: "already reserved", bike: bike("b1", "Urban", false, false), wantErr: ErrBikeUnavailable},
		{name: "rented", bike: bike("b1", "Urban", true, true), wantErr: ErrBikeUnavailable},
		{
			name: "in maintenance",
			bike: func() *models.Bike {
				b := bike("b1", "Urban", true, false)
				b.InMaintenance = true
				return b
			}(),
			wantErr: ErrBikeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bikes := bikesMock(tt.bike)
			svc := newTestService(bikes)

			got, err := svc.Reserve(ctx, "b1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.Empty(t, bikes.SetBikeActiveCalls())
				return
			}

			require.NoError(t, err)
			assert.False(t, got.IsActive)
			calls := bikes.SetBikeActiveCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, "b1", calls[0].ID)
			assert.False(t, calls[0].Active)
		})
	}

	t.Run("unknown bike", func(t *testing.T) {
		_, err := newTestService(bikesMock()).Reserve(ctx, "missing")
		assert.ErrorIs(t, err, ErrBikeNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		bikes := bikesMock(bike("b1", "Urban", true, false))
		bikes.SetBikeActiveFunc = func(ctx context.Context, id string, active bool) bool { return false }

		_, err := newTestService(bikes).Reserve(ctx, "b1")
		assert.ErrorIs(t, err, ErrUpdateFailed)
	})
}

func TestService_RentAndRelease(t *testing.T) {
	ctx := context.Background()
	bikes := bikesMock(bike("b1", "Electric", true, false))
	svc := newTestService(bikes)

	rented, err := svc.Rent(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, rented.IsRented)

	_, err = svc.Rent(ctx, "b1")
	assert.ErrorIs(t, err, ErrAlreadyRented)

	released, err := svc.Release(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, released.IsRented)
	assert.True(t, released.IsActive)

	_, err = svc.Release(ctx, "b1")
	assert.ErrorIs(t, err, ErrNotRented)

	assert.Len(t, bikes.UpdateBikeRentStatusCalls(), 2)
}

func TestService_Rent_ReservedBike(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(bikesMock(bike("b1", "Urban", true, false)))

	_, err := svc.Reserve(ctx, "b1")
	require.NoError(t, err)

	rented, err := svc.Rent(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, rented.IsRented)
	assert.False(t, rented.IsActive)

	// после возврата велосипед снова доступен
	released, err := svc.Release(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, released.IsActive)
}

func TestService_Rent_Errors(t *testing.T) {
	ctx := context.Background()

	maintenance := bike("b1", "Urban", true, false)
	maintenance.InMaintenance = true
	_, err := newTestService(bikesMock(maintenance)).Rent(ctx, "b1")
	assert.ErrorIs(t, err, ErrBikeUnavailable)

	_, err = newTestService(bikesMock()).Rent(ctx, "missing")
	assert.ErrorIs(t, err, ErrBikeNotFound)

	_, err = newTestService(bikesMock()).Release(ctx, "missing")
	assert.ErrorIs(t, err, ErrBikeNotFound)

	failing := bikesMock(bike("b1", "Urban", true, false))
	failing.UpdateBikeRentStatusFunc = func(ctx context.Context, b *models.Bike) bool { return false }
	_, err = newTestService(failing).Rent(ctx, "b1")
	assert.ErrorIs(t, err, ErrUpdateFailed)
}

func TestService_ListBikes(t *testing.T) {
	ctx := context.Background()
	bikes := bikesMock(
		bike("b1", "Urban", true, false),
		bike("b2", "Electric", true, false),
		bike("b3", "Electric", false, false),
	)
	svc := newTestService(bikes)

	assert.Len(t, svc.ListBikes(ctx, ""), 3)
	assert.Len(t, bikes.GetAllCalls(), 1)

	assert.Len(t, svc.ListBikes(ctx, " electric "), 2)
	calls := bikes.BikesByCategoryCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "electric", calls[0].Category)
}

func TestService_Categories(t *testing.T) {
	svc := newTestService(bikesMock(
		bike("b1", "Urban", true, false),
		bike("b2", "Electric", true, false),
		bike("b3", "urban", true, false),
		bike("b4", "Mountain", true, false),
		bike("b5", "", true, false),
	))

	assert.Equal(t, []string{"Urban", "Electric", "Mountain"}, svc.Categories(context.Background()))
}

func TestService_Profile(t *testing.T) {
	ctx := context.Background()
	history := []*models.Bike{bike("b1", "Urban", true, false)}
	bikes := &repository.BikeRepositoryMock{
		ActiveBikesFunc: func(ctx context.Context) []*models.Bike { return history },
	}

	t.Run("current user", func(t *testing.T) {
		users := &repository.UserRepositoryMock{
			CurrentUserFunc: func(ctx context.Context) *models.User {
				return &models.User{Name: "Laia Puig", Email: "laia.puig@patinfly.com"}
			},
		}
		svc := NewService(bikes, users, &repository.PricingPlanRepositoryMock{}, testLogger())

		profile, err := svc.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Laia Puig", profile.User.Name)
		assert.Equal(t, history, profile.History)
	})

	t.Run("no user", func(t *testing.T) {
		users := &repository.UserRepositoryMock{
			CurrentUserFunc: func(ctx context.Context) *models.User { return nil },
		}
		svc := NewService(bikes, users, &repository.PricingPlanRepositoryMock{}, testLogger())

		_, err := svc.Profile(ctx)
		assert.ErrorIs(t, err, ErrNoCurrentUser)
	})
}

func TestService_PricingPlan(t *testing.T) {
	ctx := context.Background()
	current := &models.SystemPricingPlan{Version: "3.0"}
	plans := &repository.PricingPlanRepositoryMock{
		CurrentPlanFunc: func(ctx context.Context) *models.SystemPricingPlan { return current },
		GetPricingPlanFunc: func(ctx context.Context, version string) *models.SystemPricingPlan {
			if version == "3.0" {
				return current
			}
			return nil
		},
	}
	svc := NewService(&repository.BikeRepositoryMock{}, &repository.UserRepositoryMock{}, plans, testLogger())

	got, err := svc.PricingPlan(ctx, "")
	require.NoError(t, err)
	assert.Same(t, current, got)
	assert.Len(t, plans.CurrentPlanCalls(), 1)

	got, err = svc.PricingPlan(ctx, "3.0")
	require.NoError(t, err)
	assert.Same(t, current, got)

	_, err = svc.PricingPlan(ctx, "1.0")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestService_ServerStatus(t *testing.T) {
	bikes := &repository.BikeRepositoryMock{
		StatusFunc: func(ctx context.Context) models.ServerStatus { return models.ErrorStatus() },
	}
	svc := newTestService(bikes)

	assert.True(t, svc.ServerStatus(context.Background()).IsError())
}

func TestRemoveFromHistory(t *testing.T) {
	b1 := bike("b1", "Urban", true, false)
	b2 := bike("b2", "Urban", true, false)
	history := []*models.Bike{b1, b2}

	got := RemoveFromHistory(history, "b1")
	assert.Equal(t, []*models.Bike{b2}, got)
	assert.Len(t, history, 2, "исходный список не меняется")

	assert.Equal(t, history, RemoveFromHistory(history, "missing"))
	assert.Empty(t, RemoveFromHistory(nil, "b1"))
}
