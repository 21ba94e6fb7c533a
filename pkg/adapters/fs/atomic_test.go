package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Replaces Snapshot Whole", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "cached.json")
		require.NoError(t, os.WriteFile(target, []byte(`{"name":"old","children":[]}`), 0644))

		require.NoError(t, writeFileAtomic(target, []byte(`{"name":"new","children":[]}`), 0644))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"new","children":[]}`, string(got))
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, writeFileAtomic(filepath.Join(dir, "cached.json"), []byte("{}"), 0644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover %s", e.Name())
		}
		assert.Len(t, entries, 1)
	})

	t.Run("Fails If Directory Missing", func(t *testing.T) {
		dir := t.TempDir()
		err := writeFileAtomic(filepath.Join(dir, "missing", "cached.json"), []byte("{}"), 0644)
		assert.Error(t, err)
	})

	t.Run("Cleans Up When Rename Fails", func(t *testing.T) {
		dir := t.TempDir()
		// A non-empty directory at the target path makes the rename fail.
		target := filepath.Join(dir, "cached.json")
		require.NoError(t, os.MkdirAll(filepath.Join(target, "inner"), 0755))

		err := writeFileAtomic(target, []byte("{}"), 0644)
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
