package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/client/storage/storagetest"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage_Conformance(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		return setupTestStorage(t)
	})
}

func TestNew_MigrationsApplied(t *testing.T) {
	s := setupTestStorage(t)

	for _, table := range []string{"bikes", "users", "pricing_plans"} {
		var name string
		err := s.db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
		assert.Equal(t, table, name)
	}
}

func TestNew_FileDatabaseReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "cache.sqlite")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.SavePricingPlan(ctx, storagetest.NewPlan("2024.1")))
	require.NoError(t, s.Close())

	// Повторное открытие не должно заново применять миграции
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	plan, err := s.GetPricingPlan(ctx, "2024.1")
	require.NoError(t, err)
	require.Len(t, plan.Data.Plans, 1)
	assert.Equal(t, "P1", plan.Data.Plans[0].PlanID)
}

func TestGetPricingPlan_CorruptedData(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pricing_plans (version, last_updated, ttl, data) VALUES (?, ?, ?, ?)`,
		"broken", "", 0, []byte("{not json"))
	require.NoError(t, err)

	_, err = s.GetPricingPlan(ctx, "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrPlanNotFound)
}
