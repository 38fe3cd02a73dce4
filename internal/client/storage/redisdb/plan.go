package redisdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

func (s *Storage) planKey(version string) string { return s.key("plan:", version) }
func (s *Storage) plansKey() string             { return s.key("plans") }

// SavePricingPlan stores or replaces a pricing plan by version
func (s *Storage) SavePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal pricing plan: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.planKey(plan.Version), data, 0)
		pipe.SAdd(ctx, s.plansKey(), plan.Version)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save pricing plan: %w", err)
	}

	return nil
}

// GetPricingPlan retrieves a pricing plan by version
func (s *Storage) GetPricingPlan(ctx context.Context, version string) (*models.SystemPricingPlan, error) {
	data, err := s.getJSON(ctx, s.planKey(version), storage.ErrPlanNotFound)
	if err != nil {
		return nil, err
	}

	plan := &models.SystemPricingPlan{}
	if err := json.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pricing plan: %w", err)
	}

	return plan, nil
}

// GetAllPricingPlans retrieves all pricing plans ordered by version
func (s *Storage) GetAllPricingPlans(ctx context.Context) ([]*models.SystemPricingPlan, error) {
	values, err := s.loadAll(ctx, s.plansKey(), s.planKey)
	if err != nil {
		return nil, err
	}

	plans := make([]*models.SystemPricingPlan, 0, len(values))
	for _, v := range values {
		var plan models.SystemPricingPlan
		if err := json.Unmarshal(v, &plan); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pricing plan: %w", err)
		}
		plans = append(plans, &plan)
	}

	sort.Slice(plans, func(i, j int) bool { return plans[i].Version < plans[j].Version })

	return plans, nil
}

// DeletePricingPlan removes a pricing plan by version
func (s *Storage) DeletePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) error {
	var del *redis.IntCmd

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.planKey(plan.Version))
		pipe.SRem(ctx, s.plansKey(), plan.Version)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete pricing plan: %w", err)
	}

	if del.Val() == 0 {
		return storage.ErrPlanNotFound
	}

	return nil
}
