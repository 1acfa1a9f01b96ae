package guide

import "testing"

// TestNewGuideSummary tests summary construction from a guide.
func TestNewGuideSummary(t *testing.T) {
	t.Parallel()

	g := testGuide()
	s := NewGuideSummary(g)

	if s.Slug != "test-guide" {
		t.Errorf("Slug = %q, expected test-guide", s.Slug)
	}
	if s.Kind != "question bank" {
		t.Errorf("Kind = %q, expected question bank", s.Kind)
	}
	if s.QuestionCount != 3 {
		t.Errorf("QuestionCount = %d, expected 3", s.QuestionCount)
	}
	if s.SectionCount != 2 {
		t.Errorf("SectionCount = %d, expected 2", s.SectionCount)
	}
	if s.SnippetCount != 1 {
		t.Errorf("SnippetCount = %d, expected 1", s.SnippetCount)
	}
	if s.BeginnerCount != 2 || s.AdvancedCount != 1 {
		t.Errorf("difficulty counts = %d/%d/%d/%d, expected 2/0/1/0",
			s.BeginnerCount, s.IntermediateCount, s.AdvancedCount, s.ExpertCount)
	}
	if s.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
	if !s.HasQuestions() {
		t.Error("expected HasQuestions to be true")
	}
}

// TestGuideSummaryAreas tests that areas are derived from topics in first-use order.
func TestGuideSummaryAreas(t *testing.T) {
	t.Parallel()

	s := NewGuideSummary(testGuide())

	expected := []Area{AreaJavaScript, AreaReact}
	if len(s.Areas) != len(expected) {
		t.Fatalf("expected %d areas, got %d", len(expected), len(s.Areas))
	}
	for i, area := range expected {
		if s.Areas[i] != area {
			t.Errorf("Areas[%d] = %v, expected %v", i, s.Areas[i], area)
		}
	}
}

// TestGuideSummaryCountByDifficulty tests the difficulty accessor.
func TestGuideSummaryCountByDifficulty(t *testing.T) {
	t.Parallel()

	s := NewGuideSummary(testGuide())

	testCases := []struct {
		difficulty Difficulty
		expected   int
	}{
		{DifficultyBeginner, 2},
		{DifficultyIntermediate, 0},
		{DifficultyAdvanced, 1},
		{DifficultyExpert, 0},
		{Difficulty(999), 0},
	}

	for _, tc := range testCases {
		if got := s.CountByDifficulty(tc.difficulty); got != tc.expected {
			t.Errorf("CountByDifficulty(%v) = %d, expected %d", tc.difficulty, got, tc.expected)
		}
	}
}

// TestGuideSummaryEssay tests that essays summarize with zero questions.
func TestGuideSummaryEssay(t *testing.T) {
	t.Parallel()

	g := &Guide{
		Slug:  "essay",
		Title: "An Essay",
		Kind:  KindEssay,
		Sections: []Section{
			{Heading: "Part One", Intro: []string{"Prose."}},
		},
	}

	s := NewGuideSummary(g)
	if s.HasQuestions() {
		t.Error("expected essay summary to have no questions")
	}
	if s.Kind != "essay" {
		t.Errorf("Kind = %q, expected essay", s.Kind)
	}
	if s.SectionCount != 1 {
		t.Errorf("SectionCount = %d, expected 1", s.SectionCount)
	}
}
