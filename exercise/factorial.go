package exercise

// maxFactorialInput is the largest n for which n! fits in a uint64.
// 21! = 51090942171709440000 * 21 overflows.
const maxFactorialInput = 20

// Factorial returns n! for non-negative n.
//
// It returns ErrNegativeInput for negative n and ErrTooLarge when the result
// would overflow a uint64 (n > 20). Returning an explicit error beats the
// common interview mistake of recursing forever or silently wrapping around
// on inputs outside the defined domain.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	if n > maxFactorialInput {
		return 0, ErrTooLarge
	}

	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result, nil
}
