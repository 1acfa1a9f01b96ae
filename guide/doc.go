// Package guide defines the core data structures for study guides.
//
// This package contains the following main types:
//   - Guide: A single study document (question bank or essay)
//   - Question: One prompt/answer entry with optional code snippets
//   - Difficulty: The expected difficulty of a question
//   - GuideSummary: A curated roll-up of a guide for quick review
//
// Design decision: We keep the model in its own package to avoid circular
// dependencies. Multiple packages (corpus, render, pipeline) need these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for structured output.
package guide
