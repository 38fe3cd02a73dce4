package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

// SaveBike stores or replaces a bike
func (s *Storage) SaveBike(ctx context.Context, bike *models.Bike) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketBikes)
		if err != nil {
			return err
		}
		return putBike(b, bike)
	})
}

// GetBike retrieves a bike by ID
func (s *Storage) GetBike(ctx context.Context, id string) (*models.Bike, error) {
	var bike *models.Bike

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketBikes)
		if err != nil {
			return err
		}

		bike, err = getBike(b, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return bike, nil
}

// GetAllBikes retrieves all bikes
func (s *Storage) GetAllBikes(ctx context.Context) ([]*models.Bike, error) {
	bikes := make([]*models.Bike, 0)

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketBikes)
		if err != nil {
			return err
		}

		return b.ForEach(func(k, v []byte) error {
			var bike models.Bike
			if err := json.Unmarshal(v, &bike); err != nil {
				return fmt.Errorf("failed to unmarshal bike %s: %w", k, err)
			}
			bikes = append(bikes, &bike)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return bikes, nil
}

// DeleteBike removes a bike by its ID
func (s *Storage) DeleteBike(ctx context.Context, bike *models.Bike) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketBikes)
		if err != nil {
			return err
		}

		key := []byte(bike.ID)
		if b.Get(key) == nil {
			return storage.ErrBikeNotFound
		}

		if err := b.Delete(key); err != nil {
			return fmt.Errorf("failed to delete bike: %w", err)
		}
		return nil
	})
}

// UpdateBikeActive обновляет только флаг is_active
func (s *Storage) UpdateBikeActive(ctx context.Context, id string, active bool) error {
	return s.patchBike(id, func(bike *models.Bike) {
		bike.IsActive = active
	})
}

// UpdateBikeRented обновляет только флаг is_rented
func (s *Storage) UpdateBikeRented(ctx context.Context, id string, rented bool) error {
	return s.patchBike(id, func(bike *models.Bike) {
		bike.IsRented = rented
	})
}

// patchBike читает, изменяет и записывает велосипед в одной транзакции
func (s *Storage) patchBike(id string, patch func(*models.Bike)) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketBikes)
		if err != nil {
			return err
		}

		bike, err := getBike(b, id)
		if err != nil {
			return err
		}

		patch(bike)
		return putBike(b, bike)
	})
}

func getBike(b *bbolt.Bucket, id string) (*models.Bike, error) {
	data := b.Get([]byte(id))
	if data == nil {
		return nil, storage.ErrBikeNotFound
	}

	bike := &models.Bike{}
	if err := json.Unmarshal(data, bike); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bike: %w", err)
	}
	return bike, nil
}

func putBike(b *bbolt.Bucket, bike *models.Bike) error {
	data, err := json.Marshal(bike)
	if err != nil {
		return fmt.Errorf("failed to marshal bike: %w", err)
	}

	if err := b.Put([]byte(bike.ID), data); err != nil {
		return fmt.Errorf("failed to save bike: %w", err)
	}
	return nil
}
