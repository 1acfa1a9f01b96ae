package corpus

import (
	"fmt"

	"github.com/prepdeck/prepdeck/guide"
)

// Version identifies the built-in corpus content revision.
// Bump the minor version when guides gain questions, the major version
// when guides are added, removed, or restructured.
const Version = "1.2.0"

// Builtin assembles the full built-in corpus: four question banks and two
// essays. Guides are validated as they are added, so a content mistake
// fails loudly here rather than surfacing as broken output later.
func Builtin() (*Corpus, error) {
	c := New()

	for _, g := range []*guide.Guide{
		reactGuide(),
		javascriptGuide(),
		hrGuide(),
		fullstackGuide(),
		reduxEssay(),
		renderingEssay(),
	} {
		if err := c.Add(g); err != nil {
			return nil, fmt.Errorf("building corpus: %w", err)
		}
	}

	return c, nil
}
