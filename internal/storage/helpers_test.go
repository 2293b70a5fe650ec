package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := New(t.TempDir(), opts...)
	require.NoError(t, err)
	return s
}

// writeSized creates a file of size bytes under root with the given modification time
func writeSized(t *testing.T, root, rel string, size int, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func osChtimes(path string, mtime time.Time) error {
	return os.Chtimes(path, mtime, mtime)
}
