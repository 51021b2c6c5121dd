package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeCorpusFile writes a file under dataDir/dir, creating dir as needed.
func writeCorpusFile(t *testing.T, dataDir, dir, name, content string) string {
	t.Helper()
	full := filepath.Join(dataDir, dir)
	require.NoError(t, os.MkdirAll(full, 0755))
	path := filepath.Join(full, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestLoader(t *testing.T, dataDir string) *Loader {
	t.Helper()
	loader, err := NewLoader(dataDir, WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(loader.Release)
	return loader
}
