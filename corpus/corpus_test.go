package corpus

import (
	"errors"
	"testing"

	"github.com/prepdeck/prepdeck/guide"
)

// newTestGuide returns a small valid guide with the given slug.
func newTestGuide(slug string) *guide.Guide {
	return &guide.Guide{
		Slug:  slug,
		Title: "Guide " + slug,
		Kind:  guide.KindQuestionBank,
		Sections: []guide.Section{
			{
				Heading: "Section",
				Questions: []guide.Question{
					{
						ID:         slug + "-001",
						Topic:      "closures",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "What is a closure?",
						Answer:     []string{"A function with captured scope."},
					},
					{
						ID:         slug + "-002",
						Topic:      "hooks",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "Why must hooks be called unconditionally?",
						Answer:     []string{"React identifies hooks by call order."},
					},
				},
			},
		},
	}
}

// TestCorpusAdd tests guide insertion and its failure modes.
func TestCorpusAdd(t *testing.T) {
	t.Parallel()

	t.Run("adds valid guides in order", func(t *testing.T) {
		t.Parallel()

		c := New()
		if err := c.Add(newTestGuide("one")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.Add(newTestGuide("two")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if c.Len() != 2 {
			t.Errorf("Len = %d, expected 2", c.Len())
		}
		slugs := c.Slugs()
		if slugs[0] != "one" || slugs[1] != "two" {
			t.Errorf("slugs = %v, expected insertion order", slugs)
		}
	})

	t.Run("rejects nil guide", func(t *testing.T) {
		t.Parallel()

		c := New()
		if !errors.Is(c.Add(nil), ErrNilGuide) {
			t.Error("expected ErrNilGuide")
		}
	})

	t.Run("rejects invalid guide", func(t *testing.T) {
		t.Parallel()

		c := New()
		g := newTestGuide("bad")
		g.Title = ""
		if !errors.Is(c.Add(g), guide.ErrEmptyTitle) {
			t.Error("expected guide validation error to surface")
		}
		if c.Len() != 0 {
			t.Error("invalid guide must not be inserted")
		}
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		t.Parallel()

		c := New()
		if err := c.Add(newTestGuide("dup")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !errors.Is(c.Add(newTestGuide("dup")), ErrDuplicateSlug) {
			t.Error("expected ErrDuplicateSlug")
		}
		if c.Len() != 1 {
			t.Errorf("Len = %d, expected 1 after rejected duplicate", c.Len())
		}
	})
}

// TestCorpusGet tests lookup by slug.
func TestCorpusGet(t *testing.T) {
	t.Parallel()

	c := New()
	if err := c.Add(newTestGuide("lookup")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, ok := c.Get("lookup")
	if !ok || g.Slug != "lookup" {
		t.Error("expected to find guide by slug")
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("expected lookup of missing slug to fail")
	}
}

// TestCorpusGuides tests deterministic iteration order.
func TestCorpusGuides(t *testing.T) {
	t.Parallel()

	c := New()
	for _, slug := range []string{"c", "a", "b"} {
		if err := c.Add(newTestGuide(slug)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	gs := c.Guides()
	if len(gs) != 3 {
		t.Fatalf("expected 3 guides, got %d", len(gs))
	}
	// Insertion order, not lexical order.
	if gs[0].Slug != "c" || gs[1].Slug != "a" || gs[2].Slug != "b" {
		t.Errorf("guides out of insertion order: %s, %s, %s", gs[0].Slug, gs[1].Slug, gs[2].Slug)
	}
}

// TestCorpusQueries tests cross-guide question queries.
func TestCorpusQueries(t *testing.T) {
	t.Parallel()

	c := New()
	if err := c.Add(newTestGuide("one")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Add(newTestGuide("two")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("by topic", func(t *testing.T) {
		t.Parallel()

		tagged := c.QuestionsByTopic("closures")
		if len(tagged) != 2 {
			t.Fatalf("expected 2 closure questions, got %d", len(tagged))
		}
		if tagged[0].GuideSlug != "one" || tagged[1].GuideSlug != "two" {
			t.Error("expected results tagged with owning guide in corpus order")
		}
		if len(c.QuestionsByTopic("ssr")) != 0 {
			t.Error("expected no ssr questions")
		}
	})

	t.Run("by difficulty", func(t *testing.T) {
		t.Parallel()

		if got := len(c.QuestionsByDifficulty(guide.DifficultyAdvanced)); got != 2 {
			t.Errorf("expected 2 advanced questions, got %d", got)
		}
		if got := len(c.QuestionsByDifficulty(guide.DifficultyExpert)); got != 0 {
			t.Errorf("expected 0 expert questions, got %d", got)
		}
	})
}

// TestCorpusSummariesAndStats tests aggregate views.
func TestCorpusSummariesAndStats(t *testing.T) {
	t.Parallel()

	c := New()
	if err := c.Add(newTestGuide("bank")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	essay := &guide.Guide{
		Slug:  "essay",
		Title: "An Essay",
		Kind:  guide.KindEssay,
		Sections: []guide.Section{
			{Heading: "Part", Intro: []string{"Prose."}},
		},
	}
	if err := c.Add(essay); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summaries := c.Summaries()
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].QuestionCount != 2 {
		t.Errorf("bank summary QuestionCount = %d, expected 2", summaries[0].QuestionCount)
	}

	stats := c.Stats()
	if stats.GuideCount != 2 {
		t.Errorf("GuideCount = %d, expected 2", stats.GuideCount)
	}
	if stats.QuestionBankCount != 1 || stats.EssayCount != 1 {
		t.Errorf("kind counts = %d banks / %d essays, expected 1/1",
			stats.QuestionBankCount, stats.EssayCount)
	}
	if stats.QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, expected 2", stats.QuestionCount)
	}
	if stats.TopicCount != 2 {
		t.Errorf("TopicCount = %d, expected 2", stats.TopicCount)
	}
}
