package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueLen is the rune length at which string attributes are cut.
// Long enough to identify a prompt or answer, short enough to keep one log
// record on a couple of terminal lines.
const DefaultMaxValueLen = 120

// truncationMark is appended to values that were cut.
const truncationMark = "..."

// TruncateHandler wraps an slog.Handler and truncates long string attribute
// values before passing records on. Guide prompts and answers are paragraphs
// of prose; logging them verbatim makes batch publication logs unreadable.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Callers keep passing plain *slog.Logger values around
type TruncateHandler struct {
	// handler is the underlying slog handler that receives truncated records.
	handler slog.Handler

	// maxValueLen is the rune limit applied to string attribute values.
	maxValueLen int
}

// NewTruncateHandler creates a new TruncateHandler wrapping the given handler.
// String attributes longer than DefaultMaxValueLen runes are truncated.
// If handler is nil, the returned TruncateHandler uses slog.Default().Handler().
func NewTruncateHandler(handler slog.Handler) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TruncateHandler{
		handler:     handler,
		maxValueLen: DefaultMaxValueLen,
	}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle truncates the record's attributes and passes it to the underlying handler.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	truncated := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		truncated.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, truncated)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are truncated before being added.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	truncatedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		truncatedAttrs[i] = h.truncateAttr(a)
	}
	return &TruncateHandler{
		handler:     h.handler.WithAttrs(truncatedAttrs),
		maxValueLen: h.maxValueLen,
	}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{
		handler:     h.handler.WithGroup(name),
		maxValueLen: h.maxValueLen,
	}
}

// truncateAttr truncates a single attribute, recursively handling groups.
func (h *TruncateHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		truncatedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			truncatedAttrs[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(truncatedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()
		if utf8.RuneCountInString(strVal) > h.maxValueLen {
			return slog.String(a.Key, truncate(strVal, h.maxValueLen))
		}
	}

	return a
}

// truncate cuts s to n runes and appends the truncation mark.
// Cutting at rune boundaries keeps multi-byte characters intact.
func truncate(s string, n int) string {
	runes := []rune(s)
	return string(runes[:n]) + truncationMark
}

// NewLogger creates a new slog.Logger with long-value truncation.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)

	return slog.New(NewTruncateHandler(textHandler))
}

// NewJSONLogger creates a new slog.Logger with long-value truncation that
// outputs JSON format. Useful for structured log aggregation.
//
// Parameters:
//   - w: The io.Writer to write log output to
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger configured for JSON output with truncation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(w, opts)

	return slog.New(NewTruncateHandler(jsonHandler))
}
