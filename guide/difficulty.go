package guide

// Difficulty represents how demanding a question is for a candidate.
// This allows grouping questions so readers can ramp up gradually.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Difficulty int

const (
	// DifficultyBeginner indicates questions any candidate should answer.
	// Examples: "What is a closure?", "What does useState return?".
	// These check vocabulary rather than depth.
	DifficultyBeginner Difficulty = iota

	// DifficultyIntermediate indicates questions that need real usage experience.
	// Examples: stale closure bugs, event delegation, controlled inputs.
	// These separate candidates who have shipped code from those who have read docs.
	DifficultyIntermediate

	// DifficultyAdvanced indicates questions about internals and trade-offs.
	// Examples: reconciliation heuristics, the event loop's task queues,
	// hydration mismatches. These probe mental models, not syntax.
	DifficultyAdvanced

	// DifficultyExpert indicates open-ended design questions.
	// Examples: designing a state layer, debugging a production render storm.
	// There is no single correct answer; the reasoning is what gets graded.
	DifficultyExpert
)

// String returns a human-readable representation of the difficulty level.
func (d Difficulty) String() string {
	switch d {
	case DifficultyBeginner:
		return "BEGINNER"
	case DifficultyIntermediate:
		return "INTERMEDIATE"
	case DifficultyAdvanced:
		return "ADVANCED"
	case DifficultyExpert:
		return "EXPERT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether d is one of the defined difficulty levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyBeginner && d <= DifficultyExpert
}

// Difficulties returns all defined levels in ascending order.
// Renderers iterate this to emit sections in a stable order.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
		DifficultyExpert,
	}
}
