package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/guide"
)

// TestMarkdownWriter tests Markdown guide rendering.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders header, table, and questions", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(testGuide()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "# Sample Interview Guide") {
			t.Error("expected H1 title")
		}
		if !strings.Contains(strings.ToUpper(out), "PROPERTY") {
			t.Error("expected overview table")
		}
		if !strings.Contains(out, "## Difficulty Breakdown") {
			t.Error("expected difficulty breakdown heading")
		}
		if !strings.Contains(out, "## JavaScript Basics") {
			t.Error("expected section heading as H2")
		}
		if !strings.Contains(out, "### What is a closure?") {
			t.Error("expected question prompt as H3")
		}
	})

	t.Run("folds answers into details blocks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(testGuide()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "<details>") {
			t.Error("expected details block for answers")
		}
		if !strings.Contains(out, "Show answer") {
			t.Error("expected details summary text")
		}
	})

	t.Run("reveals answers when configured", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, WithRevealAnswers())

		if _, err := w.Write(testGuide()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if strings.Contains(out, "<details>") {
			t.Error("expected no details blocks with WithRevealAnswers")
		}
		if !strings.Contains(out, "lexical scope") {
			t.Error("expected answer text inline")
		}
	})

	t.Run("renders code snippets as fenced blocks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(testGuide()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "```javascript") {
			t.Error("expected javascript fenced code block")
		}
		if !strings.Contains(out, "function counter()") {
			t.Error("expected snippet code in output")
		}
	})

	t.Run("includes mermaid pie chart for question banks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(testGuide()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "```mermaid") {
			t.Error("expected mermaid code block")
		}
		if !strings.Contains(out, "pie") {
			t.Error("expected pie chart definition")
		}
	})

	t.Run("renders essays without breakdown or chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(testEssay()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if strings.Contains(out, "## Difficulty Breakdown") {
			t.Error("essays must not show a difficulty breakdown")
		}
		if strings.Contains(out, "```mermaid") {
			t.Error("essays must not include a pie chart")
		}
		if !strings.Contains(out, "First paragraph.") {
			t.Error("expected essay prose in output")
		}
	})

	t.Run("writes summaries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		s := guide.NewGuideSummary(testGuide())
		if _, err := w.WriteSummary(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "# Sample Interview Guide") {
			t.Error("expected H1 title in summary output")
		}
		if !strings.Contains(out, "```mermaid") {
			t.Error("expected pie chart in summary output")
		}
	})
}

// TestTopicLabel tests slug-to-label conversion.
func TestTopicLabel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		slug     string
		expected string
	}{
		{"event-loop", "Event Loop"},
		{"closures", "Closures"},
		{"redux-store", "Redux Store"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.slug, func(t *testing.T) {
			t.Parallel()
			if got := topicLabel(tc.slug); got != tc.expected {
				t.Errorf("topicLabel(%q) = %q, expected %q", tc.slug, got, tc.expected)
			}
		})
	}
}

// TestSyntaxHighlight tests snippet language mapping.
func TestSyntaxHighlight(t *testing.T) {
	t.Parallel()

	if syntaxHighlight("js") != syntaxHighlight("javascript") {
		t.Error("expected js alias to map to javascript")
	}
	if string(syntaxHighlight("jsx")) != "jsx" {
		t.Error("expected unknown languages to pass through unchanged")
	}
}
