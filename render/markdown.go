package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/prepdeck/prepdeck/guide"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter renders guides as GitHub-flavored Markdown.
// This is the corpus's primary format: the documents exist to be read on
// a repository page, and answers are folded into details blocks so readers
// can quiz themselves before revealing them.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter

	// revealAnswers renders answers inline instead of inside details
	// blocks. Useful when the output is printed or diffed.
	revealAnswers bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithRevealAnswers renders answers as plain paragraphs instead of
// collapsed details blocks.
func WithRevealAnswers() MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.revealAnswers = true
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the full guide in Markdown format.
func (w *MarkdownWriter) Write(g *guide.Guide) (int, error) {
	md := markdown.NewMarkdown(w.output)

	summary := guide.NewGuideSummary(g)

	// Header
	w.writeHeader(md, g, summary)

	// Difficulty breakdown (question banks only)
	if summary.HasQuestions() {
		w.writeBreakdown(md, summary)
	}

	// Sections
	for i, section := range g.Sections {
		w.writeSection(md, &g.Sections[i], section.Heading)
	}

	// Footer
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteSummary renders only the guide summary as a Markdown overview.
func (w *MarkdownWriter) WriteSummary(s *guide.GuideSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(s.Title)
	md.PlainText("")
	w.writeSummaryTable(md, s)
	if s.HasQuestions() {
		w.writePieChart(md, s)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the guide title, description, and overview table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, g *guide.Guide, s *guide.GuideSummary) {
	md.H1(g.Title)
	md.PlainText("")

	if g.Description != "" {
		md.PlainText(g.Description)
		md.PlainText("")
	}

	w.writeSummaryTable(md, s)
}

// writeSummaryTable writes the overview table shared by Write and WriteSummary.
func (w *MarkdownWriter) writeSummaryTable(md *markdown.Markdown, s *guide.GuideSummary) {
	rows := [][]string{
		{"Kind", s.Kind},
		{"Sections", strconv.Itoa(s.SectionCount)},
	}
	if s.HasQuestions() {
		rows = append(rows,
			[]string{"Questions", strconv.Itoa(s.QuestionCount)},
			[]string{"Code Snippets", strconv.Itoa(s.SnippetCount)},
		)
	}
	if len(s.Areas) > 0 {
		areas := make([]string, len(s.Areas))
		for i, a := range s.Areas {
			areas[i] = string(a)
		}
		rows = append(rows, []string{"Areas", strings.Join(areas, ", ")})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeBreakdown writes the difficulty summary table, pie chart, and study hint.
func (w *MarkdownWriter) writeBreakdown(md *markdown.Markdown, s *guide.GuideSummary) {
	md.H2("Difficulty Breakdown")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Difficulty", "Count"},
		Rows: [][]string{
			{"🟢 Beginner", strconv.Itoa(s.BeginnerCount)},
			{"🟡 Intermediate", strconv.Itoa(s.IntermediateCount)},
			{"🟠 Advanced", strconv.Itoa(s.AdvancedCount)},
			{"🔴 Expert", strconv.Itoa(s.ExpertCount)},
			{"**Total**", "**" + strconv.Itoa(s.QuestionCount) + "**"},
		},
	})
	md.PlainText("")

	w.writePieChart(md, s)

	// Study hint based on the mix
	switch {
	case s.ExpertCount > 0:
		md.Importantf(
			"This guide contains %d expert-level question(s). Expect open-ended design discussion; practice answering out loud.",
			s.ExpertCount,
		)
	case s.BeginnerCount > 0:
		md.Tipf(
			"Warm up with the %d beginner question(s) before moving on.",
			s.BeginnerCount,
		)
	default:
		md.Note("All questions in this guide assume hands-on experience.")
	}
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart for the difficulty distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *guide.GuideSummary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Question Difficulty Distribution"),
		piechart.WithShowData(true),
	)

	if s.BeginnerCount > 0 {
		chart.LabelAndIntValue("Beginner", uint64(s.BeginnerCount))
	}
	if s.IntermediateCount > 0 {
		chart.LabelAndIntValue("Intermediate", uint64(s.IntermediateCount))
	}
	if s.AdvancedCount > 0 {
		chart.LabelAndIntValue("Advanced", uint64(s.AdvancedCount))
	}
	if s.ExpertCount > 0 {
		chart.LabelAndIntValue("Expert", uint64(s.ExpertCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeSection writes one section: heading, intro prose, then questions.
func (w *MarkdownWriter) writeSection(md *markdown.Markdown, section *guide.Section, heading string) {
	md.H2(heading)
	md.PlainText("")

	for _, para := range section.Intro {
		md.PlainText(para)
		md.PlainText("")
	}

	for i := range section.Questions {
		w.writeQuestion(md, &section.Questions[i])
	}
}

// writeQuestion writes a single question entry.
func (w *MarkdownWriter) writeQuestion(md *markdown.Markdown, q *guide.Question) {
	md.PlainText("### " + q.Prompt)
	md.PlainText("")

	info := guide.GetTopicInfo(q.Topic)
	md.PlainTextf("*%s · %s · %s*", q.ID, difficultyBadge(q.Difficulty), topicLabel(q.Topic))
	md.PlainText("")

	if w.revealAnswers {
		for _, para := range q.Answer {
			md.PlainText(para)
			md.PlainText("")
		}
	} else {
		md.Details("Show answer", strings.Join(q.Answer, "\n\n"))
		md.PlainText("")
	}

	for _, snippet := range q.Snippets {
		if snippet.Description != "" {
			md.PlainText(snippet.Description)
			md.PlainText("")
		}
		md.CodeBlocks(syntaxHighlight(snippet.Language), snippet.Code)
		md.PlainText("")
	}

	if len(q.FollowUps) > 0 {
		md.PlainText("**Likely follow-ups:**")
		md.PlainText("")
		md.BulletList(q.FollowUps...)
		md.PlainText("")
	}

	if info.StudyTip != "" {
		md.Note(info.StudyTip)
		md.PlainText("")
	}
}

// writeFooter writes the guide footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by [prepdeck](https://github.com/prepdeck/prepdeck)*")
}

// difficultyBadge returns the emoji-tagged label for a difficulty level.
func difficultyBadge(d guide.Difficulty) string {
	switch d {
	case guide.DifficultyBeginner:
		return "🟢 Beginner"
	case guide.DifficultyIntermediate:
		return "🟡 Intermediate"
	case guide.DifficultyAdvanced:
		return "🟠 Advanced"
	case guide.DifficultyExpert:
		return "🔴 Expert"
	default:
		return "Unrated"
	}
}

// topicLabel converts a topic slug into a display label
// (e.g. "event-loop" becomes "Event Loop").
func topicLabel(topic string) string {
	label := strings.ReplaceAll(topic, "-", " ")
	return cases.Title(language.English).String(label)
}

// syntaxHighlight maps a snippet language tag to the markdown library's
// syntax highlight type. Unrecognized tags pass through unchanged, which
// GitHub renders with best-effort highlighting.
func syntaxHighlight(lang string) markdown.SyntaxHighlight {
	switch lang {
	case "javascript", "js":
		return markdown.SyntaxHighlightJavaScript
	case "typescript", "ts":
		return markdown.SyntaxHighlightTypeScript
	case "json":
		return markdown.SyntaxHighlightJSON
	case "html":
		return markdown.SyntaxHighlightHTML
	default:
		return markdown.SyntaxHighlight(lang)
	}
}
