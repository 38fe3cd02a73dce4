package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/models"
)

func TestPlanStore_SplitsDocumentPerPlan(t *testing.T) {
	store := NewPlanStore(Assets(), testLogger())

	all := store.GetAll()
	require.Len(t, all, 2)

	for _, entry := range all {
		assert.Equal(t, "3.0", entry.Version)
		assert.Equal(t, 86400, entry.TTL)
		assert.Len(t, entry.Data.Plans, 1)
	}

	first := store.First()
	require.NotNil(t, first)
	assert.Equal(t, "basic", first.FirstPlanID())
	assert.Equal(t, "Bàsic", first.Data.Plans[0].DisplayName("ca"))
	require.Len(t, first.Data.Plans[0].PerMinPricing, 2)
	assert.Equal(t, 30.0, first.Data.Plans[0].PerMinPricing[1].Start)

	// Ключ - PlanID, а не версия
	assert.NotNil(t, store.Get("distance"))
	assert.Nil(t, store.Get("3.0"))
}

func TestPlanStore_InsertUpdateDelete(t *testing.T) {
	store := NewPlanStore(Assets(), testLogger())

	plan := &models.SystemPricingPlan{
		Version: "4.0",
		Data:    models.DataPlan{Plans: []models.Plan{{PlanID: "night"}}},
	}
	assert.True(t, store.Insert(plan))
	assert.False(t, store.Insert(plan))

	// Без планов ключ не определить
	assert.False(t, store.Insert(&models.SystemPricingPlan{Version: "x"}))
	assert.False(t, store.InsertOrUpdate(&models.SystemPricingPlan{Version: "x"}))

	plan.TTL = 10
	assert.True(t, store.Update(plan))
	assert.Equal(t, 10, store.Get("night").TTL)

	assert.False(t, store.Update(&models.SystemPricingPlan{Data: models.DataPlan{Plans: []models.Plan{{PlanID: "missing"}}}}))

	replaced := *plan
	replaced.Version = "4.1"
	assert.True(t, store.InsertOrUpdate(&replaced))
	assert.Equal(t, "4.1", store.Get("night").Version)

	deleted := store.DeleteFirst()
	require.NotNil(t, deleted)
	assert.Equal(t, "basic", deleted.FirstPlanID())
	assert.Nil(t, store.Get("basic"))
	assert.Len(t, store.GetAll(), 2)
}
