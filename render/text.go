package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/prepdeck/prepdeck/guide"
)

// TextWriter renders guides as human-readable plain text.
// This format is designed for terminal display: a quick scan of what a
// guide covers, with answers folded away unless explicitly requested.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// showAnswers includes answer paragraphs under each prompt.
	showAnswers bool

	// showEmpty controls whether empty difficulty groups are shown.
	showEmpty bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithShowAnswers includes model answers in the output.
// By default only prompts are listed, so the output doubles as a quiz sheet.
func WithShowAnswers(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showAnswers = show
	}
}

// WithShowEmpty configures the writer to show empty difficulty groups.
func WithShowEmpty(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showEmpty = show
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter:  newBaseWriter(output),
		showAnswers: false,
		showEmpty:   false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the full guide as plain text.
func (w *TextWriter) Write(g *guide.Guide) (int, error) {
	var sb strings.Builder

	summary := guide.NewGuideSummary(g)

	w.writeHeader(&sb, g, summary)
	if summary.HasQuestions() {
		w.writeBreakdown(&sb, summary)
	}
	w.writeSections(&sb, g)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteSummary renders only the guide summary as plain text.
func (w *TextWriter) WriteSummary(s *guide.GuideSummary) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s (%s)\n", s.Title, s.Kind))
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Sections:  %d\n", s.SectionCount))
	if s.HasQuestions() {
		sb.WriteString(fmt.Sprintf("  Questions: %d\n", s.QuestionCount))
		sb.WriteString(fmt.Sprintf("  Snippets:  %d\n", s.SnippetCount))
	}
	if len(s.Topics) > 0 {
		sb.WriteString(fmt.Sprintf("  Topics:    %s\n", strings.Join(s.Topics, ", ")))
	}
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the guide banner and overview.
func (w *TextWriter) writeHeader(sb *strings.Builder, g *guide.Guide, s *guide.GuideSummary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(g.Title)))
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if g.Description != "" {
		sb.WriteString(g.Description)
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("Kind:      %s\n", s.Kind))
	sb.WriteString(fmt.Sprintf("Sections:  %d\n", s.SectionCount))
	if s.HasQuestions() {
		sb.WriteString(fmt.Sprintf("Questions: %d\n", s.QuestionCount))
	}
	sb.WriteString("\n")
}

// writeBreakdown writes the difficulty summary block.
func (w *TextWriter) writeBreakdown(sb *strings.Builder, s *guide.GuideSummary) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("DIFFICULTY BREAKDOWN\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, d := range guide.Difficulties() {
		count := s.CountByDifficulty(d)
		if count == 0 && !w.showEmpty {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-13s %d\n", d.String()+":", count))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %-13s %d questions\n", "TOTAL:", s.QuestionCount))
	sb.WriteString("\n")
}

// writeSections writes each section with its prompts.
func (w *TextWriter) writeSections(sb *strings.Builder, g *guide.Guide) {
	for _, section := range g.Sections {
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n")
		sb.WriteString(strings.ToUpper(section.Heading))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n\n")

		for _, para := range section.Intro {
			sb.WriteString(para)
			sb.WriteString("\n\n")
		}

		for _, q := range section.Questions {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", difficultyIndicator(q.Difficulty), q.Prompt))
			sb.WriteString(fmt.Sprintf("      id: %s  topic: %s\n", q.ID, q.Topic))
			if w.showAnswers {
				for _, para := range q.Answer {
					sb.WriteString(fmt.Sprintf("      %s\n", para))
				}
			}
			sb.WriteString("\n")
		}
	}
}

// difficultyIndicator returns a short visual indicator for a difficulty level.
func difficultyIndicator(d guide.Difficulty) string {
	switch d {
	case guide.DifficultyBeginner:
		return "B"
	case guide.DifficultyIntermediate:
		return "I"
	case guide.DifficultyAdvanced:
		return "A"
	case guide.DifficultyExpert:
		return "E"
	default:
		return "?"
	}
}

// writeFooter writes the guide footer.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Generated by prepdeck\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
