package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prepdeck/prepdeck/guide"
)

// fakeStep is a configurable step for pipeline tests.
type fakeStep struct {
	name string
	err  error
	ran  *[]string
}

func (s *fakeStep) Name() string { return s.name }

func (s *fakeStep) Do(_ context.Context, _ *Build) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

// pipelineTestGuide returns a minimal valid guide for pipeline tests.
func pipelineTestGuide() *guide.Guide {
	return &guide.Guide{
		Slug:  "pipeline-test",
		Title: "Pipeline Test Guide",
		Kind:  guide.KindQuestionBank,
		Sections: []guide.Section{
			{
				Heading: "Section",
				Questions: []guide.Question{
					{
						ID:         "pt-001",
						Topic:      "closures",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "What is a closure?",
						Answer:     []string{"A function with captured scope."},
					},
				},
			},
		},
	}
}

// quietLogger returns a logger that discards output, keeping test logs clean.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestPipelineExecute tests step execution order and bookkeeping.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	var ran []string
	p := New(WithLogger(quietLogger()))
	p.AddSteps(
		&fakeStep{name: "first", ran: &ran},
		&fakeStep{name: "second", ran: &ran},
	)

	build := NewBuild(pipelineTestGuide())
	if err := p.Execute(context.Background(), build); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ran) != 2 || ran[0] != "first" || ran[1] != "second" {
		t.Errorf("steps ran out of order: %v", ran)
	}
	if len(build.PerformedSteps) != 2 {
		t.Errorf("PerformedSteps = %v, expected both steps recorded", build.PerformedSteps)
	}
}

// TestPipelineStopsOnError tests the default fail-fast behavior.
func TestPipelineStopsOnError(t *testing.T) {
	t.Parallel()

	var ran []string
	stepErr := errors.New("step failed")

	p := New(WithLogger(quietLogger()))
	p.AddSteps(
		&fakeStep{name: "first", err: stepErr, ran: &ran},
		&fakeStep{name: "second", ran: &ran},
	)

	build := NewBuild(pipelineTestGuide())
	err := p.Execute(context.Background(), build)

	if !errors.Is(err, stepErr) {
		t.Errorf("expected step error, got %v", err)
	}
	if len(ran) != 1 {
		t.Errorf("expected execution to stop after first step, ran %v", ran)
	}
	if !errors.Is(build.Err, stepErr) {
		t.Error("expected error recorded in build")
	}
}

// TestPipelineContinueOnError tests that later steps still run when configured.
func TestPipelineContinueOnError(t *testing.T) {
	t.Parallel()

	var ran []string
	stepErr := errors.New("step failed")

	p := New(WithLogger(quietLogger()), WithContinueOnError(true))
	p.AddSteps(
		&fakeStep{name: "first", err: stepErr, ran: &ran},
		&fakeStep{name: "second", ran: &ran},
	)

	build := NewBuild(pipelineTestGuide())
	if err := p.Execute(context.Background(), build); err != nil {
		t.Fatalf("expected nil error with continue-on-error, got %v", err)
	}

	if len(ran) != 2 {
		t.Errorf("expected both steps to run, ran %v", ran)
	}
	if !errors.Is(build.Err, stepErr) {
		t.Error("expected error recorded in build")
	}
}

// TestPipelineCancellation tests that a cancelled context stops execution.
func TestPipelineCancellation(t *testing.T) {
	t.Parallel()

	var ran []string
	p := New(WithLogger(quietLogger()))
	p.AddStep(&fakeStep{name: "never", ran: &ran})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	build := NewBuild(pipelineTestGuide())
	err := p.Execute(ctx, build)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(ran) != 0 {
		t.Error("expected no steps to run after cancellation")
	}
	if !errors.Is(build.Err, context.Canceled) {
		t.Error("expected cancellation recorded in build")
	}
}

// TestPipelineStepNames tests step introspection.
func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	var ran []string
	p := New(WithLogger(quietLogger()))
	p.AddSteps(
		&fakeStep{name: "validate", ran: &ran},
		&fakeStep{name: "render", ran: &ran},
	)

	if p.StepCount() != 2 {
		t.Errorf("StepCount = %d, expected 2", p.StepCount())
	}
	names := p.StepNames()
	if names[0] != "validate" || names[1] != "render" {
		t.Errorf("StepNames = %v, expected [validate render]", names)
	}
}
