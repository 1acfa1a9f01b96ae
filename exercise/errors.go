package exercise

import "errors"

var (
	// ErrNegativeInput is returned when a function is given a negative
	// number where only non-negative input is defined.
	ErrNegativeInput = errors.New("exercise: negative input")

	// ErrTooLarge is returned when a result would overflow its return type.
	ErrTooLarge = errors.New("exercise: result too large")
)
