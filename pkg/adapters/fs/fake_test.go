package fs_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacostarepublic/folio/pkg/adapters/fs"
)

// recordingFS wraps the host filesystem, records calls and injects failures.
type recordingFS struct {
	fs.FileSystem

	mu         sync.Mutex
	readDirs   []string
	reads      []string
	statErr    map[string]error
	readDirErr map[string]error
	writeErr   error
	removeErr  error
}

func newRecordingFS() *recordingFS {
	return &recordingFS{
		FileSystem: fs.OSFileSystem{},
		statErr:    make(map[string]error),
		readDirErr: make(map[string]error),
	}
}

func (r *recordingFS) Stat(name string) (os.FileInfo, error) {
	r.mu.Lock()
	err := r.statErr[name]
	r.mu.Unlock()
	if err != nil {
		return nil, &os.PathError{Op: "stat", Path: name, Err: err}
	}
	return r.FileSystem.Stat(name)
}

func (r *recordingFS) ReadDir(name string) ([]os.DirEntry, error) {
	r.mu.Lock()
	r.readDirs = append(r.readDirs, name)
	err := r.readDirErr[name]
	r.mu.Unlock()
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return r.FileSystem.ReadDir(name)
}

func (r *recordingFS) ReadFile(name string) ([]byte, error) {
	r.mu.Lock()
	r.reads = append(r.reads, name)
	r.mu.Unlock()
	return r.FileSystem.ReadFile(name)
}

func (r *recordingFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	if r.writeErr != nil {
		return &os.PathError{Op: "write", Path: name, Err: r.writeErr}
	}
	return r.FileSystem.WriteFile(name, data, perm)
}

func (r *recordingFS) Remove(name string) error {
	if r.removeErr != nil {
		return &os.PathError{Op: "remove", Path: name, Err: r.removeErr}
	}
	return r.FileSystem.Remove(name)
}

func (r *recordingFS) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readDirs = nil
	r.reads = nil
}

func (r *recordingFS) listed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.readDirs...)
}

func (r *recordingFS) read() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reads...)
}

// writeFile creates rel (slash separated) under root with content.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func doc(id, title string) string {
	if title == "" {
		return "---\nid: " + id + "\n---\nBody of " + id + "\n"
	}
	return "---\nid: " + id + "\ntitle: " + title + "\n---\nBody of " + id + "\n"
}
