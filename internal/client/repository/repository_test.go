package repository

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/client/api"
	"github.com/iudanet/patinfly/internal/client/fixtures"
	"github.com/iudanet/patinfly/internal/client/storage/boltdb"
	"github.com/iudanet/patinfly/internal/models"
)

const firstFixtureBikeID = "c9a0a1d2-3b4c-4d5e-8f60-718293a4b5c6"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestCache создаёт BoltDB кэш во временной директории
func newTestCache(t *testing.T) *boltdb.Storage {
	t.Helper()

	cache, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache
}

// newClosedCache кэш, на котором любая операция завершается ошибкой
func newClosedCache(t *testing.T) *boltdb.Storage {
	t.Helper()

	cache := newTestCache(t)
	require.NoError(t, cache.Close())
	return cache
}

// offlineRemote сервер, который ничего не знает
func offlineRemote() *api.ClientAPIMock {
	return &api.ClientAPIMock{
		GetStatusFunc: func(ctx context.Context) models.ServerStatus {
			return models.ErrorStatus()
		},
		GetBikesFunc: func(ctx context.Context) []*models.Bike {
			return []*models.Bike{}
		},
		GetBikeFunc: func(ctx context.Context, id string) *models.Bike {
			return nil
		},
	}
}

// emptyFixtures пустой список велосипедов, остальных документов нет
func emptyFixtures() fstest.MapFS {
	return fstest.MapFS{
		fixtures.BikesFile: {Data: []byte(`{"bike":[]}`)},
	}
}

func remoteBike(id string) *models.Bike {
	return &models.Bike{
		ID:           id,
		Name:         "Remote " + id,
		BikeType:     models.BikeType{Name: "Urban", Type: "Urban"},
		CreationDate: "2024-05-01T08:00:00",
		BatteryLevel: 64,
		IsActive:     true,
	}
}
