// Package log provides logging helpers for guide publication, built on top
// of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic truncation of long prose values (prompts, answers, rendered output)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Why truncation
//
// Guide content is paragraphs of prose. A pipeline step that logs a prompt
// or an answer verbatim turns every log line into a wall of text, which makes
// batch publication logs unreadable. The TruncateHandler caps long string
// attributes so log lines stay scannable while keeping enough of the value
// to identify the question it came from.
//
// # Usage
//
//	// Create a logger that truncates long values
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("lint finding",
//	    "prompt", longPrompt, // truncated to a readable prefix
//	    "guide", "javascript-interview-questions",
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
