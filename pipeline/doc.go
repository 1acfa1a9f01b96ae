// Package pipeline orchestrates guide publication as a sequence of steps.
//
// A Pipeline runs Steps (validate, lint, summarize, render) against one
// guide's Build; a BatchPublisher runs a pipeline per guide concurrently
// with a bounded limit. Steps are interface values so callers can insert
// their own checks between the built-in ones.
//
// Design decision: Publication is modeled as explicit steps rather than a
// single function because steps carry their own configuration, report
// their names for logging, and can be reordered or skipped per caller.
package pipeline
