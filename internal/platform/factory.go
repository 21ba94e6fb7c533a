package platform

import (
	"log/slog"

	"github.com/dacostarepublic/folio/pkg/adapters/fs"
	"github.com/dacostarepublic/folio/pkg/core"
)

// New builds a service over the content root.
//
//	svc, err := folio.New("./content", folio.WithConcurrency(8))
//
// Nothing is read until the first Tree call.
func New(root string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	source := o.source
	if source == nil {
		repo, err := newRepository(root, o)
		if err != nil {
			return nil, err
		}
		source = repo
	}

	return core.NewService(source, o.logger), nil
}

// newRepository builds the filesystem repository from resolved options.
func newRepository(root string, o *options) (*fs.Repository, error) {
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return fs.NewRepository(fs.Config{
		Path:             root,
		SnapshotName:     o.snapshotName,
		Ignore:           o.ignore,
		Concurrency:      o.concurrency,
		RebuildOnCorrupt: o.rebuildOnCorrupt,
		FileSystem:       o.fileSystem,
		Logger:           logger.With("component", "repository"),
	})
}
