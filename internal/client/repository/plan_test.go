package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/client/fixtures"
	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

const fixturePlanVersion = "3.0"

func newPlanRepo(t *testing.T, cache storage.PricingPlanStorage) PricingPlanRepository {
	t.Helper()
	return NewPricingPlanRepository(cache, fixtures.NewPlanStore(fixtures.Assets(), testLogger()), testLogger())
}

func testPlan(version string) *models.SystemPricingPlan {
	return &models.SystemPricingPlan{
		LastUpdated: "2024-03-01T00:00:00",
		Version:     version,
		TTL:         3600,
		Data: models.DataPlan{
			Plans: []models.Plan{{PlanID: "plan-" + version, Currency: "EUR", Price: 1.5}},
		},
	}
}

func TestPricingPlanRepository_SetThenGet(t *testing.T) {
	ctx := context.Background()
	repo := newPlanRepo(t, newTestCache(t))

	plan := testPlan("1.0")
	require.True(t, repo.SetPricingPlan(ctx, plan))

	got := repo.GetPricingPlan(ctx, "1.0")
	require.NotNil(t, got)
	assert.Equal(t, plan, got)
}

func TestPricingPlanRepository_GetPricingPlan_FixtureFallback(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	repo := newPlanRepo(t, cache)

	// версия запроса не учитывается при откате на фикстуры
	got := repo.GetPricingPlan(ctx, "9.9")
	require.NotNil(t, got)
	assert.Equal(t, fixturePlanVersion, got.Version)
	assert.Equal(t, "basic", got.FirstPlanID())

	// план сохранен под собственной версией, а не под запрошенной
	stored, err := cache.GetPricingPlan(ctx, fixturePlanVersion)
	require.NoError(t, err)
	assert.Equal(t, got, stored)

	_, err = cache.GetPricingPlan(ctx, "9.9")
	assert.ErrorIs(t, err, storage.ErrPlanNotFound)
}

func TestPricingPlanRepository_GetPricingPlan_CachePriority(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	repo := newPlanRepo(t, cache)

	cached := testPlan(fixturePlanVersion)
	require.NoError(t, cache.SavePricingPlan(ctx, cached))

	got := repo.GetPricingPlan(ctx, fixturePlanVersion)
	require.NotNil(t, got)
	assert.Equal(t, "plan-"+fixturePlanVersion, got.FirstPlanID())
}

func TestPricingPlanRepository_GetPricingPlan_NoSources(t *testing.T) {
	repo := NewPricingPlanRepository(newTestCache(t),
		fixtures.NewPlanStore(emptyFixtures(), testLogger()), testLogger())

	assert.Nil(t, repo.GetPricingPlan(context.Background(), "1.0"))
}

func TestPricingPlanRepository_CurrentPlan(t *testing.T) {
	repo := newPlanRepo(t, newTestCache(t))

	current := repo.CurrentPlan(context.Background())
	require.NotNil(t, current)
	assert.Equal(t, fixturePlanVersion, current.Version)
	require.Len(t, current.Data.Plans, 1)
}

func TestPricingPlanRepository_UpdatePricingPlan(t *testing.T) {
	ctx := context.Background()
	repo := newPlanRepo(t, newTestCache(t))

	plan := testPlan("1.0")
	require.True(t, repo.SetPricingPlan(ctx, plan))

	plan.TTL = 60
	require.NotNil(t, repo.UpdatePricingPlan(ctx, plan))

	got := repo.GetPricingPlan(ctx, "1.0")
	require.NotNil(t, got)
	assert.Equal(t, 60, got.TTL)
}

func TestPricingPlanRepository_DeletePricingPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes first cached plan", func(t *testing.T) {
		cache := newTestCache(t)
		repo := newPlanRepo(t, cache)

		require.True(t, repo.SetPricingPlan(ctx, testPlan("2.0")))
		require.True(t, repo.SetPricingPlan(ctx, testPlan("1.0")))

		deleted := repo.DeletePricingPlan(ctx)
		require.NotNil(t, deleted)
		assert.Equal(t, "1.0", deleted.Version)

		remaining, err := cache.GetAllPricingPlans(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "2.0", remaining[0].Version)
	})

	t.Run("empty cache", func(t *testing.T) {
		repo := newPlanRepo(t, newTestCache(t))
		assert.Nil(t, repo.DeletePricingPlan(ctx))
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := newPlanRepo(t, newClosedCache(t))
		assert.Nil(t, repo.DeletePricingPlan(ctx))
	})
}

func TestPricingPlanRepository_WriteFailures(t *testing.T) {
	ctx := context.Background()
	repo := newPlanRepo(t, newClosedCache(t))

	assert.False(t, repo.SetPricingPlan(ctx, testPlan("1.0")))
	assert.Nil(t, repo.UpdatePricingPlan(ctx, testPlan("1.0")))
	assert.False(t, repo.SetPricingPlan(ctx, nil))
}
