package guide

import "errors"

// Guide validation errors.
// These errors are returned by Guide.Validate when a guide is malformed.
//
// Design decision: We define specific sentinel errors rather than returning
// formatted strings so that callers (the corpus and the pipeline) can branch
// on the failure mode with errors.Is while still wrapping in positional
// context with fmt.Errorf("%w").
var (
	// ErrEmptySlug is returned when a guide has no slug.
	// The slug is the guide's identity inside a corpus and its file stem
	// when rendered, so it can never be empty.
	ErrEmptySlug = errors.New("guide slug must not be empty")

	// ErrEmptyTitle is returned when a guide has no title.
	ErrEmptyTitle = errors.New("guide title must not be empty")

	// ErrNoSections is returned when a guide contains no sections at all.
	// An empty guide renders as a bare heading, which is never intended.
	ErrNoSections = errors.New("guide must contain at least one section")

	// ErrDuplicateQuestionID is returned when two questions in the same guide
	// share an ID. IDs anchor cross-references and details blocks, so they
	// must be unique within a guide.
	ErrDuplicateQuestionID = errors.New("duplicate question id in guide")

	// ErrEmptyPrompt is returned when a question has no prompt text.
	ErrEmptyPrompt = errors.New("question prompt must not be empty")

	// ErrNoAnswer is returned when a question bank entry has no answer
	// paragraphs. Essays carry prose instead of questions; question banks
	// must always answer what they ask.
	ErrNoAnswer = errors.New("question has no answer")

	// ErrUnknownTopic is returned when a question references a topic slug
	// that is missing from the topic table. Keeping topics registered is
	// what keeps study advice consistent across guides.
	ErrUnknownTopic = errors.New("question topic is not in the topic table")

	// ErrEssayWithQuestions is returned when an essay guide contains
	// question entries. The two kinds render differently and must not mix.
	ErrEssayWithQuestions = errors.New("essay guide must not contain questions")
)
