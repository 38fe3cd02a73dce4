package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iudanet/patinfly/internal/client/api"
	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

//go:generate moq -out bike_mock.go . BikeRepository

// BikeRepository доступ к велосипедам с откатом кэш → сервер → фикстуры
type BikeRepository interface {
	// GetAll возвращает все велосипеды из первого непустого источника.
	// Данные сервера и фикстур сохраняются в кэш.
	GetAll(ctx context.Context) []*models.Bike

	// GetBike ищет велосипед по id: кэш, сервер, затем первый велосипед фикстур
	// (только если его id совпадает)
	GetBike(ctx context.Context, id string) *models.Bike

	// CurrentBike первый велосипед фикстур в порядке загрузки
	CurrentBike(ctx context.Context) *models.Bike

	SetBike(ctx context.Context, bike *models.Bike) bool
	UpdateBike(ctx context.Context, bike *models.Bike) *models.Bike
	UpdateBikeRentStatus(ctx context.Context, bike *models.Bike) bool

	// DeleteBike удаляет из кэша CurrentBike и возвращает его
	DeleteBike(ctx context.Context) *models.Bike

	// Status статус сервера, при ошибке models.ErrorStatus()
	Status(ctx context.Context) models.ServerStatus

	// BikesByCategory фильтр фикстур по имени типа без учета регистра.
	// Пустая категория означает все велосипеды.
	BikesByCategory(ctx context.Context, category string) []*models.Bike

	FirstActiveBike(ctx context.Context) *models.Bike
	ActiveBikes(ctx context.Context) []*models.Bike
	SetBikeActive(ctx context.Context, id string, active bool) bool
	SetBikeRented(ctx context.Context, id string, rented bool) bool
}

type bikeRepository struct {
	cache    storage.BikeStorage
	remote   api.ClientAPI
	fixtures BikeFixtures
	logger   *slog.Logger
}

// NewBikeRepository создает репозиторий велосипедов
func NewBikeRepository(cache storage.BikeStorage, remote api.ClientAPI, fixtures BikeFixtures, logger *slog.Logger) BikeRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &bikeRepository{
		cache:    cache,
		remote:   remote,
		fixtures: fixtures,
		logger:   logger.With(slog.String("repository", "bike")),
	}
}

func (r *bikeRepository) GetAll(ctx context.Context) []*models.Bike {
	cached, err := r.cache.GetAllBikes(ctx)
	if err != nil {
		r.logger.Error("failed to read bikes from cache", slog.Any("error", err))
	} else if len(cached) > 0 {
		r.logger.Debug("bikes served from cache", slog.Int("count", len(cached)))
		return cached
	}

	if remote := r.remote.GetBikes(ctx); len(remote) > 0 {
		r.logger.Debug("bikes fetched from server, saving to cache", slog.Int("count", len(remote)))
		r.backfill(ctx, remote)
		return remote
	}

	if local := r.fixtures.GetAll(); len(local) > 0 {
		r.logger.Debug("bikes loaded from fixtures, saving to cache", slog.Int("count", len(local)))
		r.backfill(ctx, local)
		return local
	}

	r.logger.Debug("no bikes found in any source")
	return []*models.Bike{}
}

func (r *bikeRepository) backfill(ctx context.Context, bikes []*models.Bike) {
	for _, b := range bikes {
		r.SetBike(ctx, b)
	}
}

func (r *bikeRepository) GetBike(ctx context.Context, id string) *models.Bike {
	bike, err := r.cache.GetBike(ctx, id)
	switch {
	case err == nil:
		return bike
	case errors.Is(err, storage.ErrBikeNotFound):
	default:
		r.logger.Error("failed to read bike from cache", slog.String("id", id), slog.Any("error", err))
	}

	if remote := r.remote.GetBike(ctx, id); remote != nil {
		r.logger.Debug("bike fetched from server, saving to cache", slog.String("id", id))
		r.SetBike(ctx, remote)
		return remote
	}

	if first := r.fixtures.First(); first != nil && first.ID == id {
		r.logger.Debug("bike found in fixtures, saving to cache", slog.String("id", id))
		r.SetBike(ctx, first)
		return first
	}

	r.logger.Debug("bike not found in any source", slog.String("id", id))
	return nil
}

func (r *bikeRepository) CurrentBike(_ context.Context) *models.Bike {
	return r.fixtures.First()
}

func (r *bikeRepository) SetBike(ctx context.Context, bike *models.Bike) bool {
	if bike == nil {
		return false
	}
	if err := r.cache.SaveBike(ctx, bike); err != nil {
		r.logger.Error("failed to save bike", slog.String("id", bike.ID), slog.Any("error", err))
		return false
	}
	return true
}

func (r *bikeRepository) UpdateBike(ctx context.Context, bike *models.Bike) *models.Bike {
	if !r.SetBike(ctx, bike) {
		return nil
	}
	return bike
}

func (r *bikeRepository) UpdateBikeRentStatus(ctx context.Context, bike *models.Bike) bool {
	return r.SetBike(ctx, bike)
}

func (r *bikeRepository) DeleteBike(ctx context.Context) *models.Bike {
	bike := r.CurrentBike(ctx)
	if bike == nil {
		return nil
	}

	err := r.cache.DeleteBike(ctx, bike)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrBikeNotFound):
		// в кэше и так нет, считаем удаленным
		r.logger.Debug("current bike was not cached", slog.String("id", bike.ID))
	default:
		r.logger.Error("failed to delete bike", slog.String("id", bike.ID), slog.Any("error", err))
		return nil
	}
	return bike
}

func (r *bikeRepository) Status(ctx context.Context) models.ServerStatus {
	return r.remote.GetStatus(ctx)
}

func (r *bikeRepository) BikesByCategory(_ context.Context, category string) []*models.Bike {
	var bikes []*models.Bike
	if category == "" {
		bikes = r.fixtures.GetAll()
	} else {
		bikes = r.fixtures.ByCategory(category)
	}
	if bikes == nil {
		return []*models.Bike{}
	}
	return bikes
}

func (r *bikeRepository) FirstActiveBike(ctx context.Context) *models.Bike {
	for _, b := range r.GetAll(ctx) {
		if b.IsActive {
			return b
		}
	}
	return nil
}

func (r *bikeRepository) ActiveBikes(ctx context.Context) []*models.Bike {
	active := []*models.Bike{}

	cached, err := r.cache.GetAllBikes(ctx)
	if err != nil {
		r.logger.Error("failed to read bikes from cache", slog.Any("error", err))
		return active
	}
	for _, b := range cached {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return active
}

func (r *bikeRepository) SetBikeActive(ctx context.Context, id string, active bool) bool {
	if err := r.cache.UpdateBikeActive(ctx, id, active); err != nil {
		r.logger.Error("failed to update bike active flag",
			slog.String("id", id), slog.Bool("active", active), slog.Any("error", err))
		return false
	}
	return true
}

func (r *bikeRepository) SetBikeRented(ctx context.Context, id string, rented bool) bool {
	if err := r.cache.UpdateBikeRented(ctx, id, rented); err != nil {
		r.logger.Error("failed to update bike rented flag",
			slog.String("id", id), slog.Bool("rented", rented), slog.Any("error", err))
		return false
	}
	return true
}
