package guide

import (
	"fmt"
	"time"
)

// Kind distinguishes the two document shapes in the corpus.
type Kind int

const (
	// KindQuestionBank is a guide built from prompt/answer entries,
	// optionally grouped under section headings.
	KindQuestionBank Kind = iota

	// KindEssay is a long-form prose document with no question entries.
	KindEssay
)

// String returns a human-readable representation of the guide kind.
func (k Kind) String() string {
	switch k {
	case KindQuestionBank:
		return "question bank"
	case KindEssay:
		return "essay"
	default:
		return "unknown"
	}
}

// Guide is a single study document: either a bank of interview questions
// or a long-form essay. A Guide is the unit of rendering and validation.
type Guide struct {
	// Slug identifies the guide inside a corpus and becomes the file stem
	// when the guide is rendered to disk. Lowercase, hyphen-separated.
	Slug string `json:"slug"`

	// Title is the human-facing document title.
	Title string `json:"title"`

	// Kind is the document shape (question bank or essay).
	Kind Kind `json:"kind"`

	// Description is a one-paragraph summary shown under the title.
	Description string `json:"description,omitempty"`

	// UpdatedAt is when the guide content was last revised.
	UpdatedAt time.Time `json:"updated_at"`

	// Sections are the ordered parts of the document.
	Sections []Section `json:"sections"`
}

// Section is a titled part of a guide. Question banks put their entries in
// Questions; essays carry their content in Intro paragraphs only.
type Section struct {
	// Heading is the section title, rendered as an H2.
	Heading string `json:"heading"`

	// Intro holds prose paragraphs that precede the questions.
	// For essays this is the entire section body.
	Intro []string `json:"intro,omitempty"`

	// Questions are the prompt/answer entries in this section.
	Questions []Question `json:"questions,omitempty"`
}

// Question is one interview prompt with its model answer.
type Question struct {
	// ID anchors the question inside its guide (e.g. "js-017").
	// Unique within a guide.
	ID string `json:"id"`

	// Topic is a slug into the topic table (see topic.go).
	Topic string `json:"topic"`

	// Difficulty is the expected difficulty level.
	Difficulty Difficulty `json:"difficulty"`

	// Prompt is the question as the interviewer would ask it.
	Prompt string `json:"prompt"`

	// Answer holds the model answer as ordered paragraphs.
	Answer []string `json:"answer"`

	// Snippets are illustrative code fragments referenced by the answer.
	Snippets []Snippet `json:"snippets,omitempty"`

	// FollowUps are likely follow-up prompts an interviewer may add.
	FollowUps []string `json:"follow_ups,omitempty"`
}

// Snippet is a code fragment embedded in an answer.
type Snippet struct {
	// Language is the fenced-code-block language tag (e.g. "javascript").
	Language string `json:"language"`

	// Description explains what the fragment demonstrates.
	Description string `json:"description,omitempty"`

	// Code is the fragment itself, without fencing.
	Code string `json:"code"`
}

// Questions returns all questions across all sections in document order.
func (g *Guide) Questions() []Question {
	var qs []Question
	for _, s := range g.Sections {
		qs = append(qs, s.Questions...)
	}
	return qs
}

// QuestionCount returns the total number of questions in the guide.
func (g *Guide) QuestionCount() int {
	n := 0
	for _, s := range g.Sections {
		n += len(s.Questions)
	}
	return n
}

// SnippetCount returns the total number of code snippets in the guide.
func (g *Guide) SnippetCount() int {
	n := 0
	for _, s := range g.Sections {
		for _, q := range s.Questions {
			n += len(q.Snippets)
		}
	}
	return n
}

// FindQuestion returns the question with the given ID, or false if absent.
func (g *Guide) FindQuestion(id string) (Question, bool) {
	for _, s := range g.Sections {
		for _, q := range s.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// ByDifficulty returns the guide's questions at the given difficulty,
// in document order.
func (g *Guide) ByDifficulty(d Difficulty) []Question {
	var qs []Question
	for _, s := range g.Sections {
		for _, q := range s.Questions {
			if q.Difficulty == d {
				qs = append(qs, q)
			}
		}
	}
	return qs
}

// ByTopic returns the guide's questions labeled with the given topic slug,
// in document order.
func (g *Guide) ByTopic(topic string) []Question {
	var qs []Question
	for _, s := range g.Sections {
		for _, q := range s.Questions {
			if q.Topic == topic {
				qs = append(qs, q)
			}
		}
	}
	return qs
}

// Topics returns the distinct topic slugs used by the guide, in first-use order.
func (g *Guide) Topics() []string {
	seen := make(map[string]bool)
	var topics []string
	for _, s := range g.Sections {
		for _, q := range s.Questions {
			if !seen[q.Topic] {
				seen[q.Topic] = true
				topics = append(topics, q.Topic)
			}
		}
	}
	return topics
}

// Validate checks the guide's structural invariants.
// It returns the first violation found, wrapped with enough context to
// locate the offending section or question.
func (g *Guide) Validate() error {
	if g.Slug == "" {
		return ErrEmptySlug
	}
	if g.Title == "" {
		return fmt.Errorf("guide %q: %w", g.Slug, ErrEmptyTitle)
	}
	if len(g.Sections) == 0 {
		return fmt.Errorf("guide %q: %w", g.Slug, ErrNoSections)
	}

	seen := make(map[string]bool)
	for _, s := range g.Sections {
		for _, q := range s.Questions {
			if g.Kind == KindEssay {
				return fmt.Errorf("guide %q section %q: %w", g.Slug, s.Heading, ErrEssayWithQuestions)
			}
			if q.Prompt == "" {
				return fmt.Errorf("guide %q question %q: %w", g.Slug, q.ID, ErrEmptyPrompt)
			}
			if len(q.Answer) == 0 {
				return fmt.Errorf("guide %q question %q: %w", g.Slug, q.ID, ErrNoAnswer)
			}
			if !KnownTopic(q.Topic) {
				return fmt.Errorf("guide %q question %q topic %q: %w", g.Slug, q.ID, q.Topic, ErrUnknownTopic)
			}
			if seen[q.ID] {
				return fmt.Errorf("guide %q question %q: %w", g.Slug, q.ID, ErrDuplicateQuestionID)
			}
			seen[q.ID] = true
		}
	}
	return nil
}
