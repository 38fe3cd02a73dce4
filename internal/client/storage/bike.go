package storage

import (
	"context"

	"github.com/iudanet/patinfly/internal/models"
)

// BikeStorage defines local cache operations for bikes.
// Save uses replace-on-conflict semantics: saving a bike with an existing ID overwrites it.
type BikeStorage interface {
	// SaveBike inserts or replaces a bike
	SaveBike(ctx context.Context, bike *models.Bike) error

	// GetBike returns a bike by ID
	// Returns ErrBikeNotFound if bike doesn't exist
	GetBike(ctx context.Context, id string) (*models.Bike, error)

	// GetAllBikes returns all cached bikes, empty slice if none
	GetAllBikes(ctx context.Context) ([]*models.Bike, error)

	// DeleteBike removes the record with bike's ID
	// Returns ErrBikeNotFound if bike doesn't exist
	DeleteBike(ctx context.Context, bike *models.Bike) error

	// UpdateBikeActive sets only the is_active flag
	UpdateBikeActive(ctx context.Context, id string, active bool) error

	// UpdateBikeRented sets only the is_rented flag
	UpdateBikeRented(ctx context.Context, id string, rented bool) error
}
