package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Service exposes the content tree, its id index and document sources.
type Service struct {
	source TreeSource
	logger *slog.Logger

	mu           sync.RWMutex
	lastIndexLen int
}

// NewService creates a new Service.
func NewService(source TreeSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{source: source, logger: logger}
}

// Tree returns the content tree.
// When only persisting the tree failed, the tree is returned together with the error.
func (s *Service) Tree(ctx context.Context) (Node, error) {
	return s.source.Tree(ctx)
}

// Index flattens the tree into a map keyed by document id.
// Every call builds a fresh map; nothing is shared between callers.
func (s *Service) Index(ctx context.Context) (map[string]Document, error) {
	tree, err := s.source.Tree(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]Document)
	err = Walk(tree, func(doc Document) error {
		if prev, ok := index[doc.ID]; ok {
			s.logger.Warn("duplicate document id",
				"id", doc.ID,
				"kept", doc.RelativePath,
				"dropped", prev.RelativePath,
			)
		}
		index[doc.ID] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastIndexLen = len(index)
	s.mu.Unlock()

	return index, nil
}

// DocumentWithSource looks up a document by id and returns a copy with its
// full text attached.
func (s *Service) DocumentWithSource(ctx context.Context, id string) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("%w: empty id", ErrDocumentNotFound)
	}

	index, err := s.Index(ctx)
	if err != nil {
		return Document{}, err
	}

	doc, ok := index[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}

	source, err := s.source.ReadSource(ctx, doc.RelativePath)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read document %s: %w", id, err)
	}

	return doc.WithSource(source), nil
}

// PurgeSnapshot discards the persisted tree if the source keeps one.
func (s *Service) PurgeSnapshot(ctx context.Context) error {
	p, ok := s.source.(SnapshotPurger)
	if !ok {
		return errors.New("source does not keep a snapshot")
	}
	return p.PurgeSnapshot(ctx)
}

// Source returns the underlying tree source.
func (s *Service) Source() TreeSource {
	return s.source
}
