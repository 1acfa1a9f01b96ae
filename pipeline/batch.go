package pipeline

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/prepdeck/prepdeck/guide"
	"github.com/prepdeck/prepdeck/internal/log"
	"golang.org/x/sync/errgroup"
)

// BatchPublisher handles concurrent publication of multiple guides.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchPublisher rather than adding batch
// functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-guide execution
// 2. It allows different batch strategies later (e.g., fail-fast publishing)
// 3. It provides cleaner separation of concerns
type BatchPublisher struct {
	// pipelineFactory creates a new pipeline for each guide.
	// We use a factory to ensure each guide gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of guides published at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed builds.
	// Access is synchronized via mutex.
	results []*Build
	mu      sync.Mutex
}

// BatchOption configures a BatchPublisher.
type BatchOption func(*BatchPublisher)

// WithBatchLogger sets a custom logger for batch publication.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchPublisher) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrently published guides.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchPublisher) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchPublisher creates a new BatchPublisher.
//
// The pipelineFactory function is called for each guide to create a fresh
// pipeline instance. This ensures that pipeline state doesn't leak between
// guides and allows for per-guide customization if needed.
func NewBatchPublisher(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchPublisher {
	bp := &BatchPublisher{
		pipelineFactory: pipelineFactory,
		concurrency:     4,
		results:         make([]*Build, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = log.NewLogger(os.Stderr, false)
	}

	return bp
}

// PublishAll runs a pipeline for every guide concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each guide gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Returns all builds in input order, even for guides that failed.
// The error return indicates cancellation; per-guide failures are
// recorded in each build's Err field.
func (bp *BatchPublisher) PublishAll(ctx context.Context, guides []*guide.Guide) ([]*Build, error) {
	bp.logger.Info("starting batch publication",
		"total_guides", len(guides),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	bp.results = make([]*Build, len(guides))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, doc := range guides {
		i, doc := i, doc
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Info("publishing guide",
				"guide", doc.Slug,
				"index", i+1,
				"total", len(guides),
			)

			// Create build for this guide
			build := NewBuild(doc)

			// Create and execute pipeline
			pipeline := bp.pipelineFactory()
			err := pipeline.Execute(ctx, build)

			// Store result regardless of error
			// The build contains error information if publication failed
			bp.mu.Lock()
			bp.results[i] = build
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("publication failed",
					"guide", doc.Slug,
					"error", err,
				)
				// Don't return error to errgroup - we want to continue other guides
				// The error is recorded in the build
				return nil
			}

			bp.logger.Info("publication completed",
				"guide", doc.Slug,
			)

			return nil
		})
	}

	// Wait for all publications to complete
	err := g.Wait()

	elapsed := time.Since(startTime)
	bp.logger.Info("batch publication complete",
		"total_guides", len(guides),
		"elapsed", elapsed,
	)

	return bp.results, err
}

// PublishAllWithCallback publishes every guide and calls a callback
// for each completed build. This is useful for streaming results.
//
// The callback receives the build and the index of the guide in the
// original slice. The callback is called from the goroutine that completed
// the publication, so it should be thread-safe if it accesses shared state.
func (bp *BatchPublisher) PublishAllWithCallback(
	ctx context.Context,
	guides []*guide.Guide,
	callback func(build *Build, index int),
) error {
	bp.logger.Info("starting batch publication with callback",
		"total_guides", len(guides),
		"concurrency", bp.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, doc := range guides {
		i, doc := i, doc
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			build := NewBuild(doc)
			pipeline := bp.pipelineFactory()
			_ = pipeline.Execute(ctx, build) //nolint:errcheck // Error is stored in build

			// Call the callback with the result
			callback(build, i)

			return nil
		})
	}

	return g.Wait()
}
