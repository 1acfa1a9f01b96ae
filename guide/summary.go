package guide

import "time"

// GuideSummary is a curated roll-up of a guide for quick review.
//
// Design decision: We build a separate summary type rather than computing
// counts inside the renderers because:
// 1. It provides a consistent view across Markdown, JSON, and text output
// 2. It can be serialized to JSON for tools that want structured but simple output
// 3. It separates presentation concerns from the document model
type GuideSummary struct {
	// Slug is the summarized guide's slug.
	Slug string `json:"slug"`

	// Title is the summarized guide's title.
	Title string `json:"title"`

	// Kind is the guide kind as human-readable text.
	Kind string `json:"kind"`

	// GeneratedAt is when the summary was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// === Difficulty breakdown ===

	// BeginnerCount is the number of beginner questions.
	BeginnerCount int `json:"beginner_count"`

	// IntermediateCount is the number of intermediate questions.
	IntermediateCount int `json:"intermediate_count"`

	// AdvancedCount is the number of advanced questions.
	AdvancedCount int `json:"advanced_count"`

	// ExpertCount is the number of expert questions.
	ExpertCount int `json:"expert_count"`

	// === Structure ===

	// SectionCount is the number of sections in the guide.
	SectionCount int `json:"section_count"`

	// QuestionCount is the total number of questions.
	QuestionCount int `json:"question_count"`

	// SnippetCount is the total number of embedded code snippets.
	SnippetCount int `json:"snippet_count"`

	// Topics lists the distinct topic slugs used, in first-use order.
	Topics []string `json:"topics,omitempty"`

	// Areas lists the distinct areas covered, in first-use order.
	Areas []Area `json:"areas,omitempty"`
}

// NewGuideSummary builds a summary from a guide.
func NewGuideSummary(g *Guide) *GuideSummary {
	s := &GuideSummary{
		Slug:         g.Slug,
		Title:        g.Title,
		Kind:         g.Kind.String(),
		GeneratedAt:  time.Now(),
		SectionCount: len(g.Sections),
		Topics:       g.Topics(),
	}

	for _, q := range g.Questions() {
		s.QuestionCount++
		s.SnippetCount += len(q.Snippets)
		switch q.Difficulty {
		case DifficultyBeginner:
			s.BeginnerCount++
		case DifficultyIntermediate:
			s.IntermediateCount++
		case DifficultyAdvanced:
			s.AdvancedCount++
		case DifficultyExpert:
			s.ExpertCount++
		}
	}

	seen := make(map[Area]bool)
	for _, topic := range s.Topics {
		area := GetTopicInfo(topic).Area
		if area != "" && !seen[area] {
			seen[area] = true
			s.Areas = append(s.Areas, area)
		}
	}

	return s
}

// CountByDifficulty returns the question count for a difficulty level.
func (s *GuideSummary) CountByDifficulty(d Difficulty) int {
	switch d {
	case DifficultyBeginner:
		return s.BeginnerCount
	case DifficultyIntermediate:
		return s.IntermediateCount
	case DifficultyAdvanced:
		return s.AdvancedCount
	case DifficultyExpert:
		return s.ExpertCount
	default:
		return 0
	}
}

// HasQuestions reports whether the guide contains any questions.
// Essays summarize with zero questions.
func (s *GuideSummary) HasQuestions() bool {
	return s.QuestionCount > 0
}
