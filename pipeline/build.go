package pipeline

import "github.com/prepdeck/prepdeck/guide"

// Build accumulates the results of publishing one guide.
// Steps read and extend it in sequence, mirroring how the guide moves
// from raw content to rendered output.
type Build struct {
	// Guide is the document being published.
	Guide *guide.Guide

	// Summary is attached by the summarize step.
	Summary *guide.GuideSummary

	// Lints collects non-fatal style findings from the lint step.
	Lints []Lint

	// RenderedBytes is the output size reported by the render step,
	// zero if the build never reached rendering.
	RenderedBytes int

	// PerformedSteps records the names of steps that ran, in order.
	PerformedSteps []string

	// Err holds the error that stopped the build, if any.
	// With continue-on-error enabled it holds the last step error seen.
	Err error
}

// NewBuild creates a Build for the given guide.
func NewBuild(g *guide.Guide) *Build {
	return &Build{Guide: g}
}

// Lint is a single non-fatal style finding against a guide.
type Lint struct {
	// QuestionID locates the finding, empty for guide-level findings.
	QuestionID string `json:"question_id,omitempty"`

	// Message describes what should be fixed.
	Message string `json:"message"`
}

// HasLints reports whether the build collected any style findings.
func (b *Build) HasLints() bool {
	return len(b.Lints) > 0
}
