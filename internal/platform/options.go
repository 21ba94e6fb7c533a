package platform

import (
	"log/slog"

	"github.com/dacostarepublic/folio/pkg/adapters/fs"
	"github.com/dacostarepublic/folio/pkg/core"
)

// options holds the internal configuration for the Folio service.
type options struct {
	source           core.TreeSource
	logger           *slog.Logger
	fileSystem       fs.FileSystem
	snapshotName     string
	ignore           []string
	concurrency      int
	rebuildOnCorrupt bool
}

// Option defines a functional option for configuring Folio.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		snapshotName: fs.DefaultSnapshotName,
	}
}

// WithLogger sets the logger for the service and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSnapshotName changes the file, inside the content root, that holds the persisted tree.
// Defaults to "cached.json".
func WithSnapshotName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.snapshotName = name
		}
	}
}

// WithIgnore adds doublestar patterns, matched against root-relative slash paths,
// to the default ignore set ("**/.git", "**/.git/**").
// Options are cumulative: calling it twice keeps both sets.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.ignore = append(o.ignore, patterns...)
	}
}

// WithConcurrency bounds how many entries of one directory are visited at once.
// Zero (the default) means no bound.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.concurrency = n
		}
	}
}

// WithRebuildOnCorrupt makes a corrupt snapshot trigger a rebuild in the same call
// instead of failing with core.ErrSnapshotCorrupt.
func WithRebuildOnCorrupt(enabled bool) Option {
	return func(o *options) {
		o.rebuildOnCorrupt = enabled
	}
}

// WithFileSystem swaps the filesystem used by the default repository.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fileSystem = fsys
	}
}

// WithSource injects a custom tree source (e.g. a mock).
// If provided, the filesystem repository is not created and the root argument is ignored.
func WithSource(source core.TreeSource) Option {
	return func(o *options) {
		o.source = source
	}
}
