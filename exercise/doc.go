// Package exercise provides the coding-exercise reference solutions that
// accompany the question banks. Each function is the canonical answer to a
// warm-up exercise, implemented with explicit error handling so candidates
// can compare their attempt against behavior that is defined for every
// input, including the edge cases the exercises are designed to probe.
package exercise
