package badger

import (
	"context"
	"testing"

	"github.com/poiesic/guidepost/core"
	"github.com/poiesic/guidepost/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurants() *core.Collection {
	return &core.Collection{
		Category: core.CategoryFood,
		Key:      "restaurants",
		Records: []core.Record{
			core.FoodRecord{Name: "Green Fork", Location: "12 Elm St", Certification: core.CertificationGold},
			core.FoodRecord{Name: "Bean There", Location: "4 Main St", VegVegan: "Vegan options"},
		},
	}
}

func TestCorpusRepository_SaveAndGet(t *testing.T) {
	corpusRepo, checkpointRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		checkpointRepo.Close()
		corpusRepo.Close()
		backend.Close()
	}()
	ctx := context.Background()

	col := restaurants()
	require.NoError(t, corpusRepo.SaveCollection(ctx, col))

	got, err := corpusRepo.GetCollection(ctx, core.CategoryFood, "restaurants")
	require.NoError(t, err)
	assert.Equal(t, col.Category, got.Category)
	assert.Equal(t, col.Key, got.Key)
	assert.Equal(t, col.Records, got.Records)

	t.Run("missing collection", func(t *testing.T) {
		_, err := corpusRepo.GetCollection(ctx, core.CategoryFood, "cafes")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("same key in another category is distinct", func(t *testing.T) {
		_, err := corpusRepo.GetCollection(ctx, core.CategoryPlace, "restaurants")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestCorpusRepository_SaveInvalid(t *testing.T) {
	backend, err := OpenBackend("", true, nil)
	require.NoError(t, err)
	defer backend.Close()
	repo, err := NewCorpusRepository(backend)
	require.NoError(t, err)

	err = repo.SaveCollection(context.Background(), &core.Collection{Category: core.CategoryFood})
	assert.ErrorIs(t, err, storage.ErrInvalidCollection)
	assert.ErrorIs(t, err, core.ErrEmptyKey)

	err = repo.SaveCollection(context.Background(), &core.Collection{
		Category: core.CategoryPlace,
		Key:      "parks",
		Records:  []core.Record{core.FoodRecord{Name: "Diner"}},
	})
	assert.ErrorIs(t, err, core.ErrCategoryMismatch)
}

func TestCorpusRepository_DeleteAndList(t *testing.T) {
	backend, err := OpenBackend("", true, nil)
	require.NoError(t, err)
	defer backend.Close()
	repo, err := NewCorpusRepository(backend)
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"restaurants", "cafes", "bakeries"} {
		col := restaurants()
		col.Key = key
		require.NoError(t, repo.SaveCollection(ctx, col))
	}

	keys, err := repo.ListCollections(ctx, core.CategoryFood)
	require.NoError(t, err)
	assert.Equal(t, []string{"bakeries", "cafes", "restaurants"}, keys)

	require.NoError(t, repo.DeleteCollection(ctx, core.CategoryFood, "cafes"))
	assert.ErrorIs(t, repo.DeleteCollection(ctx, core.CategoryFood, "cafes"), storage.ErrNotFound)

	keys, err = repo.ListCollections(ctx, core.CategoryFood)
	require.NoError(t, err)
	assert.Equal(t, []string{"bakeries", "restaurants"}, keys)

	keys, err = repo.ListCollections(ctx, core.CategoryEvent)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestCorpusRepository_Snapshot(t *testing.T) {
	backend, err := OpenBackend("", true, nil)
	require.NoError(t, err)
	defer backend.Close()
	repo, err := NewCorpusRepository(backend)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.SaveCollection(ctx, restaurants()))
	require.NoError(t, repo.SaveCollection(ctx, &core.Collection{
		Category: core.CategoryPlace,
		Key:      "parks",
		Records: []core.Record{
			core.PlaceRecord{Name: "Riverside Park", Accessibility: core.AccessibilityFull, Washrooms: core.WashroomsAvailable},
		},
	}))
	require.NoError(t, repo.SaveCollection(ctx, &core.Collection{
		Category: core.CategoryEvent,
		Key:      "events",
		Records: []core.Record{
			core.EventRecord{Name: "Harvest Fair", StartDate: "Sep 12", EndDate: "Sep 13"},
		},
	}))

	corpus, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, corpus.Len())
	assert.True(t, corpus.HasRecords(core.CategoryFood))
	assert.True(t, corpus.HasRecords(core.CategoryPlace))
	assert.True(t, corpus.HasRecords(core.CategoryEvent))

	parks, ok := corpus.Collection(core.CategoryPlace, "parks")
	require.True(t, ok)
	place := parks.Records[0].(core.PlaceRecord)
	assert.Equal(t, core.AccessibilityFull, place.Accessibility)
}

func TestCorpusRepository_Closed(t *testing.T) {
	backend, err := OpenBackend("", true, nil)
	require.NoError(t, err)
	repo, err := NewCorpusRepository(backend)
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	ctx := context.Background()
	assert.ErrorIs(t, repo.SaveCollection(ctx, restaurants()), storage.ErrStorageClosed)
	_, err = repo.Snapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestNewCorpusRepository_NilBackend(t *testing.T) {
	_, err := NewCorpusRepository(nil)
	assert.Equal(t, ErrBackendRequired, err)
}
