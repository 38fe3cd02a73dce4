package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

// SavePricingPlan stores or replaces a pricing plan by version
func (s *Storage) SavePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPlans)
		if err != nil {
			return err
		}

		data, err := json.Marshal(plan)
		if err != nil {
			return fmt.Errorf("failed to marshal pricing plan: %w", err)
		}

		if err := b.Put([]byte(plan.Version), data); err != nil {
			return fmt.Errorf("failed to save pricing plan: %w", err)
		}
		return nil
	})
}

// GetPricingPlan retrieves a pricing plan by version
func (s *Storage) GetPricingPlan(ctx context.Context, version string) (*models.SystemPricingPlan, error) {
	var plan *models.SystemPricingPlan

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPlans)
		if err != nil {
			return err
		}

		data := b.Get([]byte(version))
		if data == nil {
			return storage.ErrPlanNotFound
		}

		plan = &models.SystemPricingPlan{}
		if err := json.Unmarshal(data, plan); err != nil {
			return fmt.Errorf("failed to unmarshal pricing plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// GetAllPricingPlans retrieves all pricing plans in key (version) order
func (s *Storage) GetAllPricingPlans(ctx context.Context) ([]*models.SystemPricingPlan, error) {
	plans := make([]*models.SystemPricingPlan, 0)

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPlans)
		if err != nil {
			return err
		}

		return b.ForEach(func(k, v []byte) error {
			var plan models.SystemPricingPlan
			if err := json.Unmarshal(v, &plan); err != nil {
				return fmt.Errorf("failed to unmarshal pricing plan %s: %w", k, err)
			}
			plans = append(plans, &plan)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return plans, nil
}

// DeletePricingPlan removes a pricing plan by version
func (s *Storage) DeletePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPlans)
		if err != nil {
			return err
		}

		key := []byte(plan.Version)
		if b.Get(key) == nil {
			return storage.ErrPlanNotFound
		}

		if err := b.Delete(key); err != nil {
			return fmt.Errorf("failed to delete pricing plan: %w", err)
		}
		return nil
	})
}
