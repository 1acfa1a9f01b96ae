package corpus

import "errors"

// Corpus assembly errors.
//
// Design decision: We define specific sentinel errors rather than wrapping
// all errors generically. This allows callers to handle different failure
// modes appropriately (e.g., skip a duplicate, but fail fast on nil input).
var (
	// ErrNilGuide is returned when a nil guide is added to a corpus.
	ErrNilGuide = errors.New("cannot add nil guide to corpus")

	// ErrDuplicateSlug is returned when a guide's slug is already present.
	// Slugs become file stems on render, so collisions would silently
	// overwrite documents.
	ErrDuplicateSlug = errors.New("duplicate guide slug in corpus")
)
