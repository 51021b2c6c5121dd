package guidepost

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/guidepost/core"
	"github.com/poiesic/guidepost/ingestion"
)

func TestOpenDatabase(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		db, err := OpenDatabase("", WithInMemory())
		require.NoError(t, err)
		assert.NotNil(t, db.CorpusRepository())
		assert.NotNil(t, db.CheckpointRepository())
		require.NoError(t, db.Close())
	})

	t.Run("persists across reopen", func(t *testing.T) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "db")

		db, err := OpenDatabase(path)
		require.NoError(t, err)
		err = db.CorpusRepository().SaveCollection(ctx, &core.Collection{
			Category: core.CategoryPlace,
			Key:      "places",
			Records:  []core.Record{core.PlaceRecord{Name: "Fort Henry"}},
		})
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db, err = OpenDatabase(path)
		require.NoError(t, err)
		defer db.Close()

		col, err := db.CorpusRepository().GetCollection(ctx, core.CategoryPlace, "places")
		require.NoError(t, err)
		require.Len(t, col.Records, 1)
		assert.Equal(t, "Fort Henry", col.Records[0].Title())
	})
}

func TestDatabase_NewPipeline(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "Places"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "Places", "places.txt"),
		[]byte("Place Name: Fort Henry\nLocation: 1 Fort Henry Dr\n"), 0o644))

	db := newTestDatabase(t)
	loader, err := ingestion.NewLoader(dataDir)
	require.NoError(t, err)
	defer loader.Release()

	pipeline, err := db.NewPipeline(loader)
	require.NoError(t, err)

	stats, err := pipeline.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Parsed)

	g, err := NewGuide(db.CorpusRepository())
	require.NoError(t, err)
	require.NoError(t, g.Reload(ctx))
	assert.True(t, g.Corpus().HasRecords(core.CategoryPlace))
}
