package exercise

import (
	"reflect"
	"testing"
)

// TestFlatten tests arbitrary-depth flattening of nested slices.
func TestFlatten(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []any
		want  []any
	}{
		{
			name:  "two levels",
			input: []any{[]any{1, 2}, []any{3, []any{4, 5}}},
			want:  []any{1, 2, 3, 4, 5},
		},
		{
			name:  "already flat",
			input: []any{1, 2, 3},
			want:  []any{1, 2, 3},
		},
		{
			name:  "deep nesting",
			input: []any{[]any{[]any{[]any{"a"}}}, "b"},
			want:  []any{"a", "b"},
		},
		{
			name:  "empty inner slices",
			input: []any{[]any{}, 1, []any{}},
			want:  []any{1},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []any{},
		},
		{
			name:  "mixed element types",
			input: []any{1, []any{"two", []any{3.0}}, true},
			want:  []any{1, "two", 3.0, true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Flatten(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Flatten(%v) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}
