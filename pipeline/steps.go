package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prepdeck/prepdeck/guide"
	"github.com/prepdeck/prepdeck/render"
)

// ValidateStep checks the guide's structural invariants.
// It runs first so later steps can assume a well-formed guide.
type ValidateStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// ValidateStepOption configures a ValidateStep.
type ValidateStepOption func(*ValidateStep)

// WithValidateLogger sets a custom logger for the validate step.
func WithValidateLogger(logger *slog.Logger) ValidateStepOption {
	return func(s *ValidateStep) {
		s.logger = logger
	}
}

// NewValidateStep creates a new validation step.
func NewValidateStep(opts ...ValidateStepOption) *ValidateStep {
	s := &ValidateStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ValidateStep) Name() string {
	return "validate"
}

// Do executes the validation step.
func (s *ValidateStep) Do(_ context.Context, build *Build) error {
	if err := build.Guide.Validate(); err != nil {
		return fmt.Errorf("validating guide: %w", err)
	}
	s.logger.Debug("guide validated", "guide", build.Guide.Slug)
	return nil
}

// LintStep checks guide content against style conventions.
// Findings are recorded as lints in the build; lints never fail the step,
// they are advisory output for guide authors.
//
// The conventions: prompts end with terminal punctuation, answer paragraphs
// are non-empty, snippets declare a language, and prompts are not repeated
// within a guide.
type LintStep struct {
	// maxPromptLen flags prompts longer than this many characters.
	maxPromptLen int

	// logger for structured logging.
	logger *slog.Logger
}

// LintStepOption configures a LintStep.
type LintStepOption func(*LintStep)

// WithMaxPromptLen sets the prompt length limit.
func WithMaxPromptLen(n int) LintStepOption {
	return func(s *LintStep) {
		if n > 0 {
			s.maxPromptLen = n
		}
	}
}

// WithLintLogger sets a custom logger for the lint step.
func WithLintLogger(logger *slog.Logger) LintStepOption {
	return func(s *LintStep) {
		s.logger = logger
	}
}

// NewLintStep creates a new lint step.
func NewLintStep(opts ...LintStepOption) *LintStep {
	s := &LintStep{
		maxPromptLen: 220,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *LintStep) Name() string {
	return "lint"
}

// Do executes the lint step.
func (s *LintStep) Do(_ context.Context, build *Build) error {
	seenPrompts := make(map[string]string)

	for _, q := range build.Guide.Questions() {
		if !strings.HasSuffix(q.Prompt, "?") && !strings.HasSuffix(q.Prompt, ".") {
			build.Lints = append(build.Lints, Lint{
				QuestionID: q.ID,
				Message:    "prompt should end with terminal punctuation",
			})
		}
		if len(q.Prompt) > s.maxPromptLen {
			build.Lints = append(build.Lints, Lint{
				QuestionID: q.ID,
				Message:    fmt.Sprintf("prompt exceeds %d characters", s.maxPromptLen),
			})
		}
		for _, para := range q.Answer {
			if strings.TrimSpace(para) == "" {
				build.Lints = append(build.Lints, Lint{
					QuestionID: q.ID,
					Message:    "answer contains an empty paragraph",
				})
			}
		}
		for _, snippet := range q.Snippets {
			if snippet.Language == "" {
				build.Lints = append(build.Lints, Lint{
					QuestionID: q.ID,
					Message:    "snippet is missing a language tag",
				})
			}
		}
		if prev, dup := seenPrompts[q.Prompt]; dup {
			build.Lints = append(build.Lints, Lint{
				QuestionID: q.ID,
				Message:    fmt.Sprintf("prompt duplicates question %s", prev),
			})
		}
		seenPrompts[q.Prompt] = q.ID
	}

	if len(build.Lints) > 0 {
		s.logger.Warn("lint findings",
			"guide", build.Guide.Slug,
			"count", len(build.Lints),
		)
	}
	return nil
}

// SummarizeStep attaches a GuideSummary to the build.
type SummarizeStep struct{}

// NewSummarizeStep creates a new summarize step.
func NewSummarizeStep() *SummarizeStep {
	return &SummarizeStep{}
}

// Name returns the step name.
func (s *SummarizeStep) Name() string {
	return "summarize"
}

// Do executes the summarize step.
func (s *SummarizeStep) Do(_ context.Context, build *Build) error {
	build.Summary = guide.NewGuideSummary(build.Guide)
	return nil
}

// RenderStep renders the guide with a caller-supplied writer.
//
// Design decision: The step takes a writer factory rather than a writer
// because a batch run needs a fresh destination per guide (one file per
// slug), and the factory is where the caller decides that mapping.
type RenderStep struct {
	// newWriter returns the writer for a given guide.
	newWriter func(g *guide.Guide) (render.Writer, error)

	// logger for structured logging.
	logger *slog.Logger
}

// RenderStepOption configures a RenderStep.
type RenderStepOption func(*RenderStep)

// WithRenderLogger sets a custom logger for the render step.
func WithRenderLogger(logger *slog.Logger) RenderStepOption {
	return func(s *RenderStep) {
		s.logger = logger
	}
}

// NewRenderStep creates a new render step with the given writer factory.
func NewRenderStep(newWriter func(g *guide.Guide) (render.Writer, error), opts ...RenderStepOption) *RenderStep {
	s := &RenderStep{
		newWriter: newWriter,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do executes the render step.
func (s *RenderStep) Do(_ context.Context, build *Build) error {
	w, err := s.newWriter(build.Guide)
	if err != nil {
		return fmt.Errorf("creating writer for guide %q: %w", build.Guide.Slug, err)
	}

	n, err := w.Write(build.Guide)
	if err != nil {
		return fmt.Errorf("rendering guide %q: %w", build.Guide.Slug, err)
	}

	build.RenderedBytes = n
	s.logger.Debug("guide rendered",
		"guide", build.Guide.Slug,
		"bytes", n,
	)
	return nil
}
