package folio

import (
	"log/slog"

	"github.com/dacostarepublic/folio/internal/platform"
	"github.com/dacostarepublic/folio/pkg/adapters/fs"
	"github.com/dacostarepublic/folio/pkg/core"
)

// Version is the release of the library, overridden at link time:
//
//	go build -ldflags "-X github.com/dacostarepublic/folio.Version=v1.2.0"
var Version = "dev"

// --- Types ---

// Node is an element of the content tree: a *Branch or a *Leaf.
type Node = core.Node

// Branch is a directory without a document.
type Branch = core.Branch

// Leaf holds the document of a directory.
type Leaf = core.Leaf

// Document is the indexed view of a Markdown file.
type Document = core.Document

// Service is the query surface over a content root.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring Folio.
type Option = platform.Option

// Config is the content of a folio.toml file.
type Config = platform.Config

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSnapshotName changes the snapshot file name inside the content root.
func WithSnapshotName(name string) Option {
	return platform.WithSnapshotName(name)
}

// WithIgnore adds doublestar ignore patterns, matched against root-relative paths.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithConcurrency bounds how many entries of one directory are visited at once.
func WithConcurrency(n int) Option {
	return platform.WithConcurrency(n)
}

// WithRebuildOnCorrupt rebuilds instead of failing when the snapshot cannot be decoded.
func WithRebuildOnCorrupt(enabled bool) Option {
	return platform.WithRebuildOnCorrupt(enabled)
}

// WithFileSystem swaps the filesystem used by the default repository.
func WithFileSystem(fsys fs.FileSystem) Option {
	return platform.WithFileSystem(fsys)
}

// WithSource injects a custom tree source.
func WithSource(source core.TreeSource) Option {
	return platform.WithSource(source)
}

// --- Factory ---

// New creates a Folio service over the content root.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// LoadConfig reads a folio.toml file. A missing file yields a zero Config.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// FindProjectRoot looks upwards for the nearest directory holding folio.toml.
func FindProjectRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// --- Errors ---

var (
	ErrRootNotFound     = core.ErrRootNotFound
	ErrMalformedHeader  = core.ErrMalformedHeader
	ErrSnapshotCorrupt  = core.ErrSnapshotCorrupt
	ErrSnapshotWrite    = core.ErrSnapshotWrite
	ErrInvariant        = core.ErrInvariant
	ErrDocumentNotFound = core.ErrDocumentNotFound
)
