package fs

import (
	"os"
)

// FileSystem is the set of filesystem calls the repository performs.
// Paths are host paths. OSFileSystem is the default; tests substitute fakes
// to observe or fail individual calls.
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	// ReadDir lists a directory sorted by file name.
	ReadDir(name string) ([]os.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	// WriteFile replaces name with data atomically.
	WriteFile(name string, data []byte, perm os.FileMode) error
	Remove(name string) error
}

// OSFileSystem implements FileSystem on the host filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

func (OSFileSystem) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }

func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (OSFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return writeFileAtomic(name, data, perm)
}

func (OSFileSystem) Remove(name string) error { return os.Remove(name) }

var _ FileSystem = OSFileSystem{}
