package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/models"
)

func TestBikeStore_LoadOrder(t *testing.T) {
	store := NewBikeStore(Assets(), testLogger())

	first := store.First()
	require.NotNil(t, first)
	assert.Equal(t, "c9a0a1d2-3b4c-4d5e-8f60-718293a4b5c6", first.ID)
	assert.Equal(t, "Urban", first.BikeType.Name)
	require.NotNil(t, first.LastMaintenanceDate)

	all := store.GetAll()
	require.Len(t, all, 5)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Nil(t, all[1].LastMaintenanceDate)
}

func TestBikeStore_ByCategory(t *testing.T) {
	store := NewBikeStore(Assets(), testLogger())

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{name: "exact case", category: "Electric", want: 2},
		{name: "lower case", category: "electric", want: 2},
		{name: "upper case", category: "URBAN", want: 2},
		{name: "single", category: "mountain", want: 1},
		{name: "unknown", category: "Tandem", want: 0},
		{name: "empty means all", category: "", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.ByCategory(tt.category)
			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestBikeStore_InsertVsInsertOrUpdate(t *testing.T) {
	store := NewBikeStore(Assets(), testLogger())
	existing := store.First()
	require.NotNil(t, existing)

	// Insert не заменяет существующий велосипед
	dup := *existing
	dup.Name = "Duplicate"
	assert.False(t, store.Insert(&dup))
	assert.Equal(t, existing.Name, store.Get(existing.ID).Name)

	// InsertOrUpdate заменяет без смены позиции
	store.InsertOrUpdate(&dup)
	assert.Equal(t, "Duplicate", store.Get(existing.ID).Name)
	assert.Equal(t, existing.ID, store.First().ID)

	fresh := &models.Bike{ID: "new-bike", Name: "Fresh"}
	assert.True(t, store.Insert(fresh))
	assert.Equal(t, 6, store.Len())
	all := store.GetAll()
	assert.Equal(t, "new-bike", all[len(all)-1].ID)
}

func TestBikeStore_UpdateAndDelete(t *testing.T) {
	store := NewBikeStore(Assets(), testLogger())

	assert.False(t, store.Update(&models.Bike{ID: "missing"}))

	first := store.First()
	first.IsRented = true
	assert.True(t, store.Update(first))
	assert.True(t, store.Get(first.ID).IsRented)

	deleted := store.DeleteFirst()
	require.NotNil(t, deleted)
	assert.Equal(t, first.ID, deleted.ID)
	assert.Nil(t, store.Get(first.ID))
	assert.Equal(t, 4, store.Len())
}

func TestBikeStore_ReturnsCopies(t *testing.T) {
	store := NewBikeStore(Assets(), testLogger())

	b := store.First()
	b.Name = "mutated"

	assert.NotEqual(t, "mutated", store.First().Name)
}

func TestBikeStore_DeleteFirstOnEmpty(t *testing.T) {
	store := NewBikeStore(nil, testLogger())
	assert.Nil(t, store.DeleteFirst())
	assert.Nil(t, store.Get("any"))
}
