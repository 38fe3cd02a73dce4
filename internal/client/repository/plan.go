package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

//go:generate moq -out plan_mock.go . PricingPlanRepository

// PricingPlanRepository доступ к тарифным планам.
// В кэше план хранится по Version, в фикстурах по id первого плана.
type PricingPlanRepository interface {
	// CurrentPlan первый документ тарифов из фикстур
	CurrentPlan(ctx context.Context) *models.SystemPricingPlan

	// GetPricingPlan ищет в кэше по version, иначе берет CurrentPlan
	// (version при этом не учитывается) и сохраняет его под собственной Version
	GetPricingPlan(ctx context.Context, version string) *models.SystemPricingPlan

	SetPricingPlan(ctx context.Context, plan *models.SystemPricingPlan) bool
	UpdatePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) *models.SystemPricingPlan

	// DeletePricingPlan удаляет первый план из кэша и возвращает его
	DeletePricingPlan(ctx context.Context) *models.SystemPricingPlan
}

type pricingPlanRepository struct {
	cache    storage.PricingPlanStorage
	fixtures PlanFixtures
	logger   *slog.Logger
}

// NewPricingPlanRepository создает репозиторий тарифных планов
func NewPricingPlanRepository(cache storage.PricingPlanStorage, fixtures PlanFixtures, logger *slog.Logger) PricingPlanRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &pricingPlanRepository{
		cache:    cache,
		fixtures: fixtures,
		logger:   logger.With(slog.String("repository", "pricing_plan")),
	}
}

func (r *pricingPlanRepository) CurrentPlan(_ context.Context) *models.SystemPricingPlan {
	return r.fixtures.First()
}

func (r *pricingPlanRepository) GetPricingPlan(ctx context.Context, version string) *models.SystemPricingPlan {
	plan, err := r.cache.GetPricingPlan(ctx, version)
	switch {
	case err == nil:
		return plan
	case errors.Is(err, storage.ErrPlanNotFound):
	default:
		r.logger.Error("failed to read pricing plan from cache", slog.String("version", version), slog.Any("error", err))
	}

	local := r.fixtures.First()
	if local == nil {
		return nil
	}
	r.logger.Debug("pricing plan loaded from fixtures, saving to cache",
		slog.String("requested", version), slog.String("version", local.Version))
	r.SetPricingPlan(ctx, local)
	return local
}

func (r *pricingPlanRepository) SetPricingPlan(ctx context.Context, plan *models.SystemPricingPlan) bool {
	if plan == nil {
		return false
	}
	if err := r.cache.SavePricingPlan(ctx, plan); err != nil {
		r.logger.Error("failed to save pricing plan", slog.String("version", plan.Version), slog.Any("error", err))
		return false
	}
	return true
}

func (r *pricingPlanRepository) UpdatePricingPlan(ctx context.Context, plan *models.SystemPricingPlan) *models.SystemPricingPlan {
	if !r.SetPricingPlan(ctx, plan) {
		return nil
	}
	return plan
}

func (r *pricingPlanRepository) DeletePricingPlan(ctx context.Context) *models.SystemPricingPlan {
	plans, err := r.cache.GetAllPricingPlans(ctx)
	if err != nil {
		r.logger.Error("failed to read pricing plans from cache", slog.Any("error", err))
		return nil
	}
	if len(plans) == 0 {
		return nil
	}

	plan := plans[0]
	if err := r.cache.DeletePricingPlan(ctx, plan); err != nil {
		r.logger.Error("failed to delete pricing plan", slog.String("version", plan.Version), slog.Any("error", err))
		return nil
	}
	return plan
}
