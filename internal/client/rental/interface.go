package rental

import (
	"context"

	"github.com/iudanet/patinfly/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service операции проката поверх репозиториев
type Service interface {
	// ListBikes все велосипеды (кэш, сервер, фикстуры) либо фильтр
	// фикстур по категории, если category не пуста
	ListBikes(ctx context.Context, category string) []*models.Bike

	// GetBike возвращает велосипед или ErrBikeNotFound
	GetBike(ctx context.Context, id string) (*models.Bike, error)

	// Reserve снимает велосипед с доступных (IsActive=false)
	Reserve(ctx context.Context, id string) (*models.Bike, error)

	// Rent отмечает велосипед арендованным
	Rent(ctx context.Context, id string) (*models.Bike, error)

	// Release завершает аренду и возвращает велосипед в доступные
	Release(ctx context.Context, id string) (*models.Bike, error)

	// Profile текущий пользователь и его история аренды
	Profile(ctx context.Context) (*Profile, error)

	// Categories уникальные имена типов велосипедов в порядке загрузки
	Categories(ctx context.Context) []string

	// PricingPlan тариф по версии; пустая версия означает текущий тариф
	PricingPlan(ctx context.Context, version string) (*models.SystemPricingPlan, error)

	// ServerStatus статус сервера, заглушка при недоступности
	ServerStatus(ctx context.Context) models.ServerStatus
}
