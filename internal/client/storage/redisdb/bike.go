package redisdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

func (s *Storage) bikeKey(id string) string { return s.key("bike:", id) }
func (s *Storage) bikesKey() string        { return s.key("bikes") }

// SaveBike stores or replaces a bike
func (s *Storage) SaveBike(ctx context.Context, bike *models.Bike) error {
	data, err := json.Marshal(bike)
	if err != nil {
		return fmt.Errorf("failed to marshal bike: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.bikeKey(bike.ID), data, 0)
		pipe.SAdd(ctx, s.bikesKey(), bike.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save bike: %w", err)
	}

	return nil
}

// GetBike retrieves a bike by ID
func (s *Storage) GetBike(ctx context.Context, id string) (*models.Bike, error) {
	data, err := s.getJSON(ctx, s.bikeKey(id), storage.ErrBikeNotFound)
	if err != nil {
		return nil, err
	}

	bike := &models.Bike{}
	if err := json.Unmarshal(data, bike); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bike: %w", err)
	}

	return bike, nil
}

// GetAllBikes retrieves all bikes ordered by ID
func (s *Storage) GetAllBikes(ctx context.Context) ([]*models.Bike, error) {
	values, err := s.loadAll(ctx, s.bikesKey(), s.bikeKey)
	if err != nil {
		return nil, err
	}

	bikes := make([]*models.Bike, 0, len(values))
	for _, v := range values {
		var bike models.Bike
		if err := json.Unmarshal(v, &bike); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bike: %w", err)
		}
		bikes = append(bikes, &bike)
	}

	sort.Slice(bikes, func(i, j int) bool { return bikes[i].ID < bikes[j].ID })

	return bikes, nil
}

// DeleteBike removes a bike by its ID
func (s *Storage) DeleteBike(ctx context.Context, bike *models.Bike) error {
	var del *redis.IntCmd

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.bikeKey(bike.ID))
		pipe.SRem(ctx, s.bikesKey(), bike.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete bike: %w", err)
	}

	if del.Val() == 0 {
		return storage.ErrBikeNotFound
	}

	return nil
}

// UpdateBikeActive обновляет только флаг is_active
func (s *Storage) UpdateBikeActive(ctx context.Context, id string, active bool) error {
	return s.patchBike(ctx, id, func(bike *models.Bike) {
		bike.IsActive = active
	})
}

// UpdateBikeRented обновляет только флаг is_rented
func (s *Storage) UpdateBikeRented(ctx context.Context, id string, rented bool) error {
	return s.patchBike(ctx, id, func(bike *models.Bike) {
		bike.IsRented = rented
	})
}

// patchBike изменяет велосипед под WATCH, чтобы не потерять параллельную запись
func (s *Storage) patchBike(ctx context.Context, id string, patch func(*models.Bike)) error {
	key := s.bikeKey(id)

	return s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return storage.ErrBikeNotFound
			}
			return fmt.Errorf("redis get %s: %w", key, err)
		}

		var bike models.Bike
		if err := json.Unmarshal(data, &bike); err != nil {
			return fmt.Errorf("failed to unmarshal bike: %w", err)
		}

		patch(&bike)

		updated, err := json.Marshal(&bike)
		if err != nil {
			return fmt.Errorf("failed to marshal bike: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}, key)
}
