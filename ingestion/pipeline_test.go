package ingestion

import (
	"context"
	"os"
	"testing"

	"github.com/poiesic/guidepost/core"
	"github.com/poiesic/guidepost/storage"
	"github.com/poiesic/guidepost/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline(t *testing.T) {
	corpusRepo, checkpointRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		checkpointRepo.Close()
		corpusRepo.Close()
		backend.Close()
	}()
	loader := newTestLoader(t, t.TempDir())

	t.Run("valid configuration", func(t *testing.T) {
		p, err := NewPipeline(loader, corpusRepo, checkpointRepo, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("nil loader", func(t *testing.T) {
		_, err := NewPipeline(nil, corpusRepo, checkpointRepo)
		assert.Equal(t, ErrLoaderRequired, err)
	})

	t.Run("nil corpus repository", func(t *testing.T) {
		_, err := NewPipeline(loader, nil, checkpointRepo)
		assert.Equal(t, ErrCorpusRepositoryRequired, err)
	})

	t.Run("nil checkpoint repository", func(t *testing.T) {
		_, err := NewPipeline(loader, corpusRepo, nil)
		assert.Equal(t, ErrCheckpointRepositoryRequired, err)
	})
}

func TestPipeline_Sync(t *testing.T) {
	corpusRepo, checkpointRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		checkpointRepo.Close()
		corpusRepo.Close()
		backend.Close()
	}()
	ctx := context.Background()

	dir := t.TempDir()
	writeCorpusFile(t, dir, "Food", "restaurants.txt", restaurantsFile)
	cafes := writeCorpusFile(t, dir, "Food", "cafes.txt", "Business Name: Bean There\nLocation: 4 Main St")
	writeCorpusFile(t, dir, "Events", "events.txt", "Harvest Fair | Sep 12 | Sep 13 | Fairgrounds")

	pipeline, err := NewPipeline(newTestLoader(t, dir), corpusRepo, checkpointRepo)
	require.NoError(t, err)

	t.Run("first sync parses everything", func(t *testing.T) {
		stats, err := pipeline.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, SyncStats{Parsed: 3, Records: 4}, stats)
		assert.True(t, stats.Changed())

		corpus, err := corpusRepo.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, corpus.Len())

		checkpoint, err := checkpointRepo.LoadCheckpoint(ctx, "food/cafes")
		require.NoError(t, err)
		require.NotNil(t, checkpoint)
	})

	t.Run("unchanged files are skipped", func(t *testing.T) {
		stats, err := pipeline.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, SyncStats{Skipped: 3}, stats)
		assert.False(t, stats.Changed())
	})

	t.Run("changed file is re-parsed", func(t *testing.T) {
		require.NoError(t, os.WriteFile(cafes, []byte("Business Name: Bean There\nBusiness Name: Daily Grind"), 0644))
		stats, err := pipeline.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, SyncStats{Parsed: 1, Skipped: 2, Records: 2}, stats)

		col, err := corpusRepo.GetCollection(ctx, core.CategoryFood, "cafes")
		require.NoError(t, err)
		assert.Len(t, col.Records, 2)
	})

	t.Run("removed file drops its collection", func(t *testing.T) {
		require.NoError(t, os.Remove(cafes))
		stats, err := pipeline.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, SyncStats{Skipped: 2, Removed: 1}, stats)

		_, err = corpusRepo.GetCollection(ctx, core.CategoryFood, "cafes")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		checkpoint, err := checkpointRepo.LoadCheckpoint(ctx, "food/cafes")
		require.NoError(t, err)
		assert.Nil(t, checkpoint)
	})

	t.Run("emptied file drops its collection", func(t *testing.T) {
		writeCorpusFile(t, dir, "Events", "events.txt", "")
		stats, err := pipeline.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, SyncStats{Parsed: 1, Skipped: 1}, stats)

		_, err = corpusRepo.GetCollection(ctx, core.CategoryEvent, "events")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestParseSourceName(t *testing.T) {
	category, key, ok := parseSourceName("place/parks")
	require.True(t, ok)
	assert.Equal(t, core.CategoryPlace, category)
	assert.Equal(t, "parks", key)

	_, _, ok = parseSourceName("bogus/parks")
	assert.False(t, ok)
	_, _, ok = parseSourceName("food/")
	assert.False(t, ok)
}
