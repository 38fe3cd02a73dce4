// Package storagetest содержит общий набор проверок для реализаций storage.Storage.
package storagetest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

// Factory создает новое пустое хранилище для одного подтеста
type Factory func(t *testing.T) storage.Storage

// NewBike возвращает тестовый велосипед с заданным id
func NewBike(id string) *models.Bike {
	maintenance := "2024-01-10T10:00:00Z"
	return &models.Bike{
		ID:                  id,
		Name:                "Bike " + id,
		BikeType:            models.BikeType{UUID: "t-" + id, Name: "Urban", Type: "URBAN"},
		CreationDate:        "2023-05-01T08:00:00Z",
		LastMaintenanceDate: &maintenance,
		BatteryLevel:        80,
		Meters:              1200,
		IsActive:            true,
	}
}

// NewUser возвращает тестового пользователя
func NewUser(email string) *models.User {
	return &models.User{
		UUID:           uuid.New(),
		Name:           "Test User",
		Email:          email,
		HashedPassword: "secret",
		CreationDate:   "2023-01-01",
		LastConnection: "2024-01-01",
		DeviceID:       "device-1",
	}
}

// NewPlan возвращает тестовый тариф с версией version
func NewPlan(version string) *models.SystemPricingPlan {
	return &models.SystemPricingPlan{
		LastUpdated: "2024-03-01T00:00:00Z",
		TTL:         3600,
		Version:     version,
		Data: models.DataPlan{Plans: []models.Plan{{
			PlanID:       "P1",
			Name:         []models.LocalizedText{{Text: "Basic", Language: "en"}},
			Description:  []models.LocalizedText{{Text: "Pay per use", Language: "en"}},
			Currency:     "EUR",
			Price:        1.5,
			IsTaxable:    true,
			PerKmPricing: []models.RateTier{{Start: 0, Rate: 0.2, Interval: 1}},
			PerMinPricing: []models.RateTier{
				{Start: 0, Rate: 0.1, Interval: 1},
				{Start: 30, Rate: 0.05, Interval: 1},
			},
		}}},
	}
}

// Run выполняет общий набор проверок для хранилища
func Run(t *testing.T, newStorage Factory) {
	t.Run("bikes", func(t *testing.T) { testBikes(t, newStorage(t)) })
	t.Run("bike flags", func(t *testing.T) { testBikeFlags(t, newStorage(t)) })
	t.Run("users", func(t *testing.T) { testUsers(t, newStorage(t)) })
	t.Run("user email change", func(t *testing.T) { testUserEmailChange(t, newStorage(t)) })
	t.Run("duplicate email across uuids", func(t *testing.T) { testUserDuplicateEmail(t, newStorage(t)) })
	t.Run("email freed by change", func(t *testing.T) { testUserEmailFreed(t, newStorage(t)) })
	t.Run("pricing plans", func(t *testing.T) { testPlans(t, newStorage(t)) })
}

func testBikes(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	all, err := s.GetAllBikes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	_, err = s.GetBike(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrBikeNotFound)

	bike := NewBike("1")
	require.NoError(t, s.SaveBike(ctx, bike))

	// Запись, затем чтение возвращает то же значение
	got, err := s.GetBike(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, bike, got)

	// Повторное сохранение заменяет запись
	bike.Name = "Renamed"
	require.NoError(t, s.SaveBike(ctx, bike))
	got, err = s.GetBike(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	noMaintenance := NewBike("2")
	noMaintenance.LastMaintenanceDate = nil
	require.NoError(t, s.SaveBike(ctx, noMaintenance))
	got, err = s.GetBike(ctx, "2")
	require.NoError(t, err)
	assert.Nil(t, got.LastMaintenanceDate)

	all, err = s.GetAllBikes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, s.DeleteBike(ctx, bike))
	_, err = s.GetBike(ctx, "1")
	assert.ErrorIs(t, err, storage.ErrBikeNotFound)

	err = s.DeleteBike(ctx, bike)
	assert.ErrorIs(t, err, storage.ErrBikeNotFound)
}

func testBikeFlags(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	bike := NewBike("42")
	require.NoError(t, s.SaveBike(ctx, bike))

	require.NoError(t, s.UpdateBikeActive(ctx, "42", false))
	require.NoError(t, s.UpdateBikeRented(ctx, "42", true))

	got, err := s.GetBike(ctx, "42")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.True(t, got.IsRented)

	// Остальные поля не меняются
	assert.Equal(t, bike.Name, got.Name)
	assert.Equal(t, bike.BikeType, got.BikeType)
	assert.Equal(t, bike.BatteryLevel, got.BatteryLevel)

	assert.ErrorIs(t, s.UpdateBikeActive(ctx, "missing", true), storage.ErrBikeNotFound)
	assert.ErrorIs(t, s.UpdateBikeRented(ctx, "missing", true), storage.ErrBikeNotFound)
}

func testUsers(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	user := NewUser("user@example.com")

	_, err := s.GetUser(ctx, user.UUID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	_, err = s.GetUserByEmail(ctx, user.Email)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	require.NoError(t, s.SaveUser(ctx, user))

	got, err := s.GetUser(ctx, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	got, err = s.GetUserByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UUID, got.UUID)

	// Поиск по email точный, без нормализации
	_, err = s.GetUserByEmail(ctx, " USER@example.com ")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	all, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.DeleteUser(ctx, user))
	_, err = s.GetUser(ctx, user.UUID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	_, err = s.GetUserByEmail(ctx, user.Email)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	assert.ErrorIs(t, s.DeleteUser(ctx, user), storage.ErrUserNotFound)
}

func testUserEmailChange(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	user := NewUser("old@example.com")
	require.NoError(t, s.SaveUser(ctx, user))

	user.Email = "new@example.com"
	require.NoError(t, s.SaveUser(ctx, user))

	_, err := s.GetUserByEmail(ctx, "old@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	got, err := s.GetUserByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UUID, got.UUID)
}

func testUserDuplicateEmail(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	first := NewUser("x@y.com")
	require.NoError(t, s.SaveUser(ctx, first))

	second := NewUser("x@y.com")
	second.Name = "Second"
	err := s.SaveUser(ctx, second)
	require.ErrorIs(t, err, storage.ErrEmailTaken)

	_, err = s.GetUser(ctx, second.UUID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	got, err := s.GetUserByEmail(ctx, "x@y.com")
	require.NoError(t, err)
	assert.Equal(t, first.UUID, got.UUID)

	// Повторное сохранение того же пользователя не конфликтует с собой
	first.Name = "Renamed"
	require.NoError(t, s.SaveUser(ctx, first))

	second.Email = "other@y.com"
	require.NoError(t, s.SaveUser(ctx, second))

	// Перевод на занятый email тоже отклоняется
	second.Email = "x@y.com"
	assert.ErrorIs(t, s.SaveUser(ctx, second), storage.ErrEmailTaken)

	got, err = s.GetUserByEmail(ctx, "other@y.com")
	require.NoError(t, err)
	assert.Equal(t, second.UUID, got.UUID)

	require.NoError(t, s.DeleteUser(ctx, first))

	_, err = s.GetUserByEmail(ctx, "x@y.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	got, err = s.GetUserByEmail(ctx, "other@y.com")
	require.NoError(t, err)
	assert.Equal(t, second.UUID, got.UUID)

	all, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func testUserEmailFreed(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	first := NewUser("shared@y.com")
	require.NoError(t, s.SaveUser(ctx, first))

	first.Email = "moved@y.com"
	require.NoError(t, s.SaveUser(ctx, first))

	// Освободившийся email можно занять другим пользователем
	second := NewUser("shared@y.com")
	require.NoError(t, s.SaveUser(ctx, second))

	// Удаление первого не трогает индекс второго
	require.NoError(t, s.DeleteUser(ctx, first))

	got, err := s.GetUserByEmail(ctx, "shared@y.com")
	require.NoError(t, err)
	assert.Equal(t, second.UUID, got.UUID)

	_, err = s.GetUserByEmail(ctx, "moved@y.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func testPlans(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	_, err := s.GetPricingPlan(ctx, "v1")
	assert.ErrorIs(t, err, storage.ErrPlanNotFound)

	plan := NewPlan("v1")
	require.NoError(t, s.SavePricingPlan(ctx, plan))

	got, err := s.GetPricingPlan(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, plan, got)

	require.NoError(t, s.SavePricingPlan(ctx, NewPlan("v2")))

	all, err := s.GetAllPricingPlans(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "v1", all[0].Version)
	assert.Equal(t, "v2", all[1].Version)

	require.NoError(t, s.DeletePricingPlan(ctx, plan))
	_, err = s.GetPricingPlan(ctx, "v1")
	assert.ErrorIs(t, err, storage.ErrPlanNotFound)

	assert.ErrorIs(t, s.DeletePricingPlan(ctx, plan), storage.ErrPlanNotFound)
}
