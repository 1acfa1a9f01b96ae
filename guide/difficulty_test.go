package guide

import "testing"

// TestDifficultyString tests the String method of Difficulty.
func TestDifficultyString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		difficulty Difficulty
		expected   string
	}{
		{DifficultyBeginner, "BEGINNER"},
		{DifficultyIntermediate, "INTERMEDIATE"},
		{DifficultyAdvanced, "ADVANCED"},
		{DifficultyExpert, "EXPERT"},
		{Difficulty(999), "UNKNOWN"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.difficulty.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.difficulty.String(), tc.expected)
			}
		})
	}
}

// TestDifficultyOrdering tests that difficulty levels are ordered correctly.
// Beginner < Intermediate < Advanced < Expert
func TestDifficultyOrdering(t *testing.T) {
	t.Parallel()

	if DifficultyBeginner >= DifficultyIntermediate {
		t.Error("expected DifficultyBeginner < DifficultyIntermediate")
	}
	if DifficultyIntermediate >= DifficultyAdvanced {
		t.Error("expected DifficultyIntermediate < DifficultyAdvanced")
	}
	if DifficultyAdvanced >= DifficultyExpert {
		t.Error("expected DifficultyAdvanced < DifficultyExpert")
	}
}

// TestDifficultyValid tests the Valid method.
func TestDifficultyValid(t *testing.T) {
	t.Parallel()

	for _, d := range Difficulties() {
		if !d.Valid() {
			t.Errorf("expected %v to be valid", d)
		}
	}

	if Difficulty(-1).Valid() {
		t.Error("expected Difficulty(-1) to be invalid")
	}
	if Difficulty(4).Valid() {
		t.Error("expected Difficulty(4) to be invalid")
	}
}

// TestDifficulties tests that Difficulties returns all levels in order.
func TestDifficulties(t *testing.T) {
	t.Parallel()

	levels := Difficulties()
	if len(levels) != 4 {
		t.Fatalf("expected 4 difficulty levels, got %d", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("levels not in ascending order at index %d", i)
		}
	}
}
