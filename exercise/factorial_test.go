package exercise

import (
	"errors"
	"testing"
)

// TestFactorial tests factorial computation including domain boundaries.
func TestFactorial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   int
		want    uint64
		wantErr error
	}{
		{name: "zero", input: 0, want: 1},
		{name: "one", input: 1, want: 1},
		{name: "five", input: 5, want: 120},
		{name: "ten", input: 10, want: 3628800},
		{name: "largest representable", input: 20, want: 2432902008176640000},
		{name: "negative input", input: -1, wantErr: ErrNegativeInput},
		{name: "overflow", input: 21, wantErr: ErrTooLarge},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Factorial(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Factorial(%d) error = %v, expected %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Factorial(%d) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Factorial(%d) = %d, expected %d", tt.input, got, tt.want)
			}
		})
	}
}
