package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/guidepost/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointRepository(t *testing.T) {
	corpusRepo, checkpointRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		checkpointRepo.Close()
		corpusRepo.Close()
		backend.Close()
	}()
	ctx := context.Background()

	t.Run("load missing returns nil", func(t *testing.T) {
		cp, err := checkpointRepo.LoadCheckpoint(ctx, "food/restaurants")
		require.NoError(t, err)
		assert.Nil(t, cp)
	})

	t.Run("save sets loaded time", func(t *testing.T) {
		cp := &core.Checkpoint{Source: "food/restaurants", Checksum: core.IDFromContent("v1")}
		require.NoError(t, checkpointRepo.SaveCheckpoint(ctx, cp))
		assert.False(t, cp.LoadedAt.IsZero())

		loaded, err := checkpointRepo.LoadCheckpoint(ctx, "food/restaurants")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, cp.Checksum, loaded.Checksum)
		assert.True(t, cp.LoadedAt.Equal(loaded.LoadedAt))
	})

	t.Run("overwrite", func(t *testing.T) {
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		cp := &core.Checkpoint{Source: "food/restaurants", Checksum: core.IDFromContent("v2"), LoadedAt: at}
		require.NoError(t, checkpointRepo.SaveCheckpoint(ctx, cp))

		loaded, err := checkpointRepo.LoadCheckpoint(ctx, "food/restaurants")
		require.NoError(t, err)
		assert.Equal(t, core.IDFromContent("v2"), loaded.Checksum)
		assert.True(t, at.Equal(loaded.LoadedAt))
	})

	t.Run("list and delete", func(t *testing.T) {
		require.NoError(t, checkpointRepo.SaveCheckpoint(ctx, &core.Checkpoint{Source: "event/events"}))

		all, err := checkpointRepo.ListCheckpoints(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "event/events", all[0].Source)
		assert.Equal(t, "food/restaurants", all[1].Source)

		require.NoError(t, checkpointRepo.DeleteCheckpoint(ctx, "event/events"))
		all, err = checkpointRepo.ListCheckpoints(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "food/restaurants", all[0].Source)
	})
}
