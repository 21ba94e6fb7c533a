package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dacostarepublic/folio/pkg/core"
)

// Repository implements core.TreeSource over a directory of Markdown documents,
// persisting the built tree as a JSON snapshot inside that directory.
type Repository struct {
	Path     string
	config   Config
	fs       FileSystem
	snapshot *snapshot
	ignore   []string
	logger   *slog.Logger

	mu        sync.RWMutex
	builds    int
	hits      int
	lastBuild *time.Time
	documents int
	branches  int
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path             string
	SnapshotName     string   // defaults to DefaultSnapshotName
	Ignore           []string // doublestar patterns added to DefaultIgnore
	Concurrency      int      // max concurrent entries per directory; 0 means unlimited
	RebuildOnCorrupt bool     // rebuild in the same call instead of failing on a corrupt snapshot
	FileSystem       FileSystem
	Logger           *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) (*Repository, error) {
	if config.Path == "" {
		return nil, errors.New("content root path is empty")
	}

	root, err := filepath.Abs(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content root: %w", err)
	}

	ignore, err := compileIgnore(config.Ignore)
	if err != nil {
		return nil, err
	}

	fsys := config.FileSystem
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Repository{
		Path:     root,
		config:   config,
		fs:       fsys,
		snapshot: newSnapshot(fsys, root, config.SnapshotName),
		ignore:   ignore,
		logger:   logger,
	}, nil
}

// Tree returns the content tree.
//
// Workflow:
//  1. Fail with core.ErrRootNotFound if the root is missing.
//  2. If a snapshot exists, decode and return it without touching anything else.
//     A corrupt snapshot is removed and core.ErrSnapshotCorrupt returned, unless
//     RebuildOnCorrupt is set.
//  3. Otherwise walk the root, persist the tree and return it. If persisting fails
//     the tree is still returned, together with an error wrapping core.ErrSnapshotWrite.
func (r *Repository) Tree(ctx context.Context) (core.Node, error) {
	info, err := r.fs.Stat(r.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrRootNotFound, r.Path)
		}
		return nil, fmt.Errorf("failed to stat content root: %w", err)
	}
	if !info.IsDir() {
		// A file root has no directory to hold a snapshot; the walk rejects it.
		return r.build(ctx)
	}

	tree, found, err := r.snapshot.Load()
	switch {
	case err != nil && r.config.RebuildOnCorrupt && errors.Is(err, core.ErrSnapshotCorrupt):
		r.logger.Warn("snapshot corrupt, rebuilding", "path", r.snapshot.Path, "error", err)
	case err != nil:
		return nil, err
	case found:
		r.logger.Debug("snapshot hit", "path", r.snapshot.Path)
		r.recordHit()
		return tree, nil
	}

	r.logger.Debug("snapshot miss, walking content root", "root", r.Path)
	start := time.Now()
	tree, err = r.build(ctx)
	if err != nil {
		return nil, err
	}
	branches, leaves := core.Count(tree)
	r.recordBuild(branches, leaves)
	r.logger.Debug("content tree built",
		"branches", branches,
		"documents", leaves,
		"duration", time.Since(start),
	)

	if err := r.snapshot.Save(tree); err != nil {
		r.logger.Warn("failed to persist snapshot", "path", r.snapshot.Path, "error", err)
		return tree, err
	}
	return tree, nil
}

func (r *Repository) build(ctx context.Context) (core.Node, error) {
	w := &walker{
		fs:       r.fs,
		root:     r.Path,
		rootName: filepath.Base(r.Path),
		ignore:   r.ignore,
		limit:    r.config.Concurrency,
		logger:   r.logger,
	}
	tree, err := w.walk(ctx)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: %s vanished during the walk", core.ErrRootNotFound, r.Path)
	}
	return tree, nil
}

// ReadSource returns the full text of the document at relPath.
func (r *Repository) ReadSource(ctx context.Context, relPath string) (string, error) {
	local := filepath.FromSlash(relPath)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("document path %q escapes the content root", relPath)
	}

	data, err := r.fs.ReadFile(filepath.Join(r.Path, local))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PurgeSnapshot removes the persisted tree so the next Tree call walks the root.
func (r *Repository) PurgeSnapshot(ctx context.Context) error {
	if err := r.snapshot.Remove(); err != nil {
		return err
	}
	r.logger.Debug("snapshot purged", "path", r.snapshot.Path)
	return nil
}

// SnapshotPath returns the location of the persisted tree.
func (r *Repository) SnapshotPath() string {
	return r.snapshot.Path
}

var _ core.TreeSource = (*Repository)(nil)
var _ core.SnapshotPurger = (*Repository)(nil)
