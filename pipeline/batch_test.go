package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/prepdeck/prepdeck/guide"
	"github.com/prepdeck/prepdeck/render"
)

// batchTestGuides returns several valid guides with distinct slugs.
func batchTestGuides(n int) []*guide.Guide {
	guides := make([]*guide.Guide, 0, n)
	for i := 0; i < n; i++ {
		g := pipelineTestGuide()
		g.Slug = fmt.Sprintf("batch-guide-%d", i)
		g.Sections[0].Questions[0].ID = fmt.Sprintf("bq-%03d", i)
		guides = append(guides, g)
	}
	return guides
}

// publishPipeline builds the standard publication pipeline for batch tests.
func publishPipeline() *Pipeline {
	p := New(WithLogger(quietLogger()))
	p.AddSteps(
		NewValidateStep(WithValidateLogger(quietLogger())),
		NewSummarizeStep(),
		NewRenderStep(func(_ *guide.Guide) (render.Writer, error) {
			return render.NewTextWriter(io.Discard), nil
		}, WithRenderLogger(quietLogger())),
	)
	return p
}

// TestBatchPublisherPublishAll tests concurrent publication of multiple guides.
func TestBatchPublisherPublishAll(t *testing.T) {
	t.Parallel()

	guides := batchTestGuides(5)
	bp := NewBatchPublisher(publishPipeline,
		WithBatchLogger(quietLogger()),
		WithConcurrency(2),
	)

	builds, err := bp.PublishAll(context.Background(), guides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(builds) != len(guides) {
		t.Fatalf("got %d builds, expected %d", len(builds), len(guides))
	}

	// Results must come back in input order regardless of completion order.
	for i, build := range builds {
		if build == nil {
			t.Fatalf("build %d is nil", i)
		}
		if build.Guide.Slug != guides[i].Slug {
			t.Errorf("build %d has slug %q, expected %q", i, build.Guide.Slug, guides[i].Slug)
		}
		if build.Err != nil {
			t.Errorf("build %d failed: %v", i, build.Err)
		}
		if build.Summary == nil {
			t.Errorf("build %d missing summary", i)
		}
		if build.RenderedBytes == 0 {
			t.Errorf("build %d has zero rendered bytes", i)
		}
	}
}

// TestBatchPublisherRecordsFailures tests that a failing guide doesn't stop the batch.
func TestBatchPublisherRecordsFailures(t *testing.T) {
	t.Parallel()

	guides := batchTestGuides(3)
	guides[1].Slug = "" // fails validation

	bp := NewBatchPublisher(publishPipeline, WithBatchLogger(quietLogger()))

	builds, err := bp.PublishAll(context.Background(), guides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !errors.Is(builds[1].Err, guide.ErrEmptySlug) {
		t.Errorf("expected ErrEmptySlug on failed build, got %v", builds[1].Err)
	}
	if builds[0].Err != nil || builds[2].Err != nil {
		t.Error("expected sibling guides to publish despite one failure")
	}
}

// TestBatchPublisherCancellation tests context cancellation during batch publication.
func TestBatchPublisherCancellation(t *testing.T) {
	t.Parallel()

	guides := batchTestGuides(4)
	bp := NewBatchPublisher(publishPipeline,
		WithBatchLogger(quietLogger()),
		WithConcurrency(1),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bp.PublishAll(ctx, guides)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// TestBatchPublisherCallback tests the streaming callback variant.
func TestBatchPublisherCallback(t *testing.T) {
	t.Parallel()

	guides := batchTestGuides(4)
	bp := NewBatchPublisher(publishPipeline, WithBatchLogger(quietLogger()))

	var mu sync.Mutex
	seen := make(map[int]string)

	err := bp.PublishAllWithCallback(context.Background(), guides, func(build *Build, index int) {
		mu.Lock()
		defer mu.Unlock()
		seen[index] = build.Guide.Slug
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seen) != len(guides) {
		t.Fatalf("callback fired %d times, expected %d", len(seen), len(guides))
	}
	for i, g := range guides {
		if seen[i] != g.Slug {
			t.Errorf("callback index %d saw slug %q, expected %q", i, seen[i], g.Slug)
		}
	}
}

// TestBatchPublisherDefaults tests option defaulting.
func TestBatchPublisherDefaults(t *testing.T) {
	t.Parallel()

	bp := NewBatchPublisher(publishPipeline)
	if bp.concurrency != 4 {
		t.Errorf("default concurrency = %d, expected 4", bp.concurrency)
	}

	bp = NewBatchPublisher(publishPipeline, WithConcurrency(0))
	if bp.concurrency != 4 {
		t.Errorf("WithConcurrency(0) should keep default, got %d", bp.concurrency)
	}
}
