package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/dacostarepublic/folio/pkg/core"
)

// TreeLoader is the part of core.Service that Warm needs.
type TreeLoader interface {
	Tree(ctx context.Context) (core.Node, error)
}

// Warm loads the content tree in the background so the snapshot is in place
// before the first request. The returned channel yields exactly one value
// (nil on success) and is then closed.
func Warm(ctx context.Context, svc TreeLoader, logger *slog.Logger) <-chan error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	done := make(chan error, 1)
	var (
		once     sync.Once
		returned atomic.Bool
	)
	deliver := func(err error) {
		once.Do(func() {
			done <- err
			close(done)
		})
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		start := time.Now()
		tree, err := svc.Tree(ctx)
		if err != nil {
			logger.Warn("warm-up failed", "error", err)
			deliver(err)
			returned.Store(true)
			return err
		}
		branches, leaves := core.Count(tree)
		logger.Debug("warm-up finished",
			"branches", branches,
			"documents", leaves,
			"duration", time.Since(start),
		)
		deliver(nil)
		returned.Store(true)
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		// Also called with the error fn returned; only a panic is reported here.
		if returned.Load() {
			return
		}
		logger.Error("warm-up panic", "error", err)
		deliver(fmt.Errorf("warm-up panic: %w", err))
	}))

	return done
}
