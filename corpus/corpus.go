package corpus

import (
	"fmt"

	"github.com/prepdeck/prepdeck/guide"
)

// Corpus is an ordered collection of validated study guides keyed by slug.
//
// Design decision: We keep both a map and an insertion-order slice because:
// 1. Lookup by slug must be O(1) for cross-references
// 2. Rendering must be deterministic, and map iteration order is not
// 3. The corpus is small, so the duplication costs nothing
type Corpus struct {
	// guides maps slug to guide for lookup.
	guides map[string]*guide.Guide

	// order records slugs in insertion order for deterministic iteration.
	order []string
}

// New creates an empty Corpus.
func New() *Corpus {
	return &Corpus{
		guides: make(map[string]*guide.Guide),
	}
}

// Add validates the guide and inserts it into the corpus.
// It returns ErrNilGuide for nil input, the guide's own validation error
// if it is malformed, or ErrDuplicateSlug if the slug is already taken.
func (c *Corpus) Add(g *guide.Guide) error {
	if g == nil {
		return ErrNilGuide
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if _, exists := c.guides[g.Slug]; exists {
		return fmt.Errorf("guide %q: %w", g.Slug, ErrDuplicateSlug)
	}

	c.guides[g.Slug] = g
	c.order = append(c.order, g.Slug)
	return nil
}

// Get returns the guide with the given slug, or false if absent.
func (c *Corpus) Get(slug string) (*guide.Guide, bool) {
	g, ok := c.guides[slug]
	return g, ok
}

// Guides returns all guides in insertion order.
func (c *Corpus) Guides() []*guide.Guide {
	gs := make([]*guide.Guide, len(c.order))
	for i, slug := range c.order {
		gs[i] = c.guides[slug]
	}
	return gs
}

// Slugs returns all guide slugs in insertion order.
func (c *Corpus) Slugs() []string {
	slugs := make([]string, len(c.order))
	copy(slugs, c.order)
	return slugs
}

// Len returns the number of guides in the corpus.
func (c *Corpus) Len() int {
	return len(c.order)
}

// Summaries returns a summary for every guide, in insertion order.
func (c *Corpus) Summaries() []*guide.GuideSummary {
	summaries := make([]*guide.GuideSummary, 0, len(c.order))
	for _, g := range c.Guides() {
		summaries = append(summaries, guide.NewGuideSummary(g))
	}
	return summaries
}

// TaggedQuestion is a question paired with the slug of the guide it came
// from. Cross-guide queries return these so callers can cite sources.
type TaggedQuestion struct {
	// GuideSlug is the slug of the owning guide.
	GuideSlug string `json:"guide_slug"`

	// Question is the entry itself.
	Question guide.Question `json:"question"`
}

// QuestionsByTopic returns every question in the corpus labeled with the
// given topic slug, in corpus order.
func (c *Corpus) QuestionsByTopic(topic string) []TaggedQuestion {
	var out []TaggedQuestion
	for _, g := range c.Guides() {
		for _, q := range g.ByTopic(topic) {
			out = append(out, TaggedQuestion{GuideSlug: g.Slug, Question: q})
		}
	}
	return out
}

// QuestionsByDifficulty returns every question in the corpus at the given
// difficulty, in corpus order.
func (c *Corpus) QuestionsByDifficulty(d guide.Difficulty) []TaggedQuestion {
	var out []TaggedQuestion
	for _, g := range c.Guides() {
		for _, q := range g.ByDifficulty(d) {
			out = append(out, TaggedQuestion{GuideSlug: g.Slug, Question: q})
		}
	}
	return out
}

// Stats aggregates corpus-wide counts.
type Stats struct {
	// GuideCount is the total number of guides.
	GuideCount int `json:"guide_count"`

	// QuestionBankCount is the number of question-bank guides.
	QuestionBankCount int `json:"question_bank_count"`

	// EssayCount is the number of essay guides.
	EssayCount int `json:"essay_count"`

	// QuestionCount is the total number of questions across all guides.
	QuestionCount int `json:"question_count"`

	// SnippetCount is the total number of code snippets across all guides.
	SnippetCount int `json:"snippet_count"`

	// TopicCount is the number of distinct topics used.
	TopicCount int `json:"topic_count"`
}

// Stats computes aggregate counts over the whole corpus.
func (c *Corpus) Stats() *Stats {
	stats := &Stats{GuideCount: len(c.order)}
	topics := make(map[string]bool)

	for _, g := range c.Guides() {
		switch g.Kind {
		case guide.KindQuestionBank:
			stats.QuestionBankCount++
		case guide.KindEssay:
			stats.EssayCount++
		}
		stats.QuestionCount += g.QuestionCount()
		stats.SnippetCount += g.SnippetCount()
		for _, topic := range g.Topics() {
			topics[topic] = true
		}
	}

	stats.TopicCount = len(topics)
	return stats
}
