// Package render turns study guides into publishable output.
//
// This package contains writers for different output formats:
//   - MarkdownWriter: GitHub-flavored Markdown, the corpus's primary format
//   - JSONWriter: Structured JSON output for tool integration
//   - TextWriter: Human-readable text output for terminal display
//
// Design decision: We separate rendering from the document model
// (which lives in the guide package) to follow the single responsibility
// principle. This allows adding new output formats without modifying
// the core data structures.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package render
