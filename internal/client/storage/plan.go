package storage

import (
	"context"

	"github.com/iudanet/patinfly/internal/models"
)

// PricingPlanStorage defines local cache operations for system pricing plans.
// Plans are keyed by Version; the nested Data is stored as an opaque blob.
type PricingPlanStorage interface {
	// SavePricingPlan inserts or replaces a plan by version
	SavePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) error

	// GetPricingPlan returns a plan by version
	// Returns ErrPlanNotFound if plan doesn't exist
	GetPricingPlan(ctx context.Context, version string) (*models.SystemPricingPlan, error)

	// GetAllPricingPlans returns all cached plans ordered by version
	GetAllPricingPlans(ctx context.Context) ([]*models.SystemPricingPlan, error)

	// DeletePricingPlan removes the record with plan's version
	DeletePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) error
}

// Storage объединяет все хранилища локального кэша
type Storage interface {
	BikeStorage
	UserStorage
	PricingPlanStorage
	Close() error
}
