package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacostarepublic/folio/pkg/core"
)

// DefaultSnapshotName is the file, inside the content root, holding the persisted tree.
const DefaultSnapshotName = "cached.json"

// snapshot manages loading, saving and discarding the persisted tree.
type snapshot struct {
	Path string // e.g. {root}/cached.json
	fs   FileSystem
}

func newSnapshot(fsys FileSystem, root, name string) *snapshot {
	if name == "" {
		name = DefaultSnapshotName
	}
	return &snapshot{
		Path: filepath.Join(root, name),
		fs:   fsys,
	}
}

// Load reads the persisted tree.
// found is false when no snapshot exists. A snapshot that fails to decode is
// removed and reported as core.ErrSnapshotCorrupt; the next Load then misses.
func (s *snapshot) Load() (tree core.Node, found bool, err error) {
	data, err := s.fs.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, fmt.Errorf("failed to read snapshot: %w", err)
	}

	tree, err = core.UnmarshalTree(data)
	if err != nil {
		// Best effort: if the removal fails the next Load reports the corruption again.
		_ = s.fs.Remove(s.Path)
		return nil, true, fmt.Errorf("%w: %s: %w", core.ErrSnapshotCorrupt, s.Path, err)
	}

	return tree, true, nil
}

// Save encodes and persists the tree.
func (s *snapshot) Save(tree core.Node) error {
	data, err := core.MarshalTree(tree)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrSnapshotWrite, err)
	}
	if err := s.fs.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", core.ErrSnapshotWrite, err)
	}
	return nil
}

// Remove deletes the snapshot. A missing snapshot is not an error.
func (s *snapshot) Remove() error {
	if err := s.fs.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}
	return nil
}

// Exists reports whether a snapshot file is present.
func (s *snapshot) Exists() bool {
	_, err := s.fs.Stat(s.Path)
	return err == nil
}
