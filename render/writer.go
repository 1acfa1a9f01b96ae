package render

import (
	"io"

	"github.com/prepdeck/prepdeck/guide"
)

// Writer defines the interface for guide output.
// Implementations render a study guide in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write renders the full guide to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(g *guide.Guide) (int, error)

	// WriteSummary renders only the guide's summary.
	// This is useful for index pages and quick overviews.
	WriteSummary(s *guide.GuideSummary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for publishing a guide in several formats at once.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write guides, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the guide with all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(g *guide.Guide) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(g)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteSummary renders the summary with all configured Writers.
func (m *MultiWriter) WriteSummary(s *guide.GuideSummary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteSummary(s)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for guide writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
