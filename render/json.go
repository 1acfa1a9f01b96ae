package render

import (
	"encoding/json"
	"io"

	"github.com/prepdeck/prepdeck/guide"
)

// JSONWriter renders guides in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the full guide in JSON format.
func (w *JSONWriter) Write(g *guide.Guide) (int, error) {
	return w.writeJSON(g)
}

// WriteSummary renders only the guide summary in JSON format.
func (w *JSONWriter) WriteSummary(s *guide.GuideSummary) (int, error) {
	return w.writeJSON(s)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONGuide wraps a guide with its summary and a corpus version string.
// This is used when a consumer wants the document and its roll-up together.
//
// Design decision: We wrap the guide rather than adding output-specific
// fields to guide.Guide because this keeps the core data structure free of
// presentation concerns.
type JSONGuide struct {
	// Version is the corpus version that produced this document.
	Version string `json:"version"`

	// Guide is the full study guide.
	Guide *guide.Guide `json:"guide"`

	// Summary is the guide's roll-up for quick access.
	Summary *guide.GuideSummary `json:"summary,omitempty"`
}

// FullJSONWriter renders guides wrapped with version metadata and summary.
type FullJSONWriter struct {
	*JSONWriter

	// version is the corpus version string.
	version string
}

// NewFullJSONWriter creates a writer for wrapped guides with metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write renders the guide wrapped with its summary and version.
func (w *FullJSONWriter) Write(g *guide.Guide) (int, error) {
	wrapped := &JSONGuide{
		Version: w.version,
		Guide:   g,
		Summary: guide.NewGuideSummary(g),
	}
	return w.writeJSON(wrapped)
}
