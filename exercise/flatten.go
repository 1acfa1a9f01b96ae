package exercise

// Flatten recursively flattens nested []any slices into a single flat slice,
// to arbitrary depth. Non-slice elements are appended as-is, preserving
// left-to-right order. A nil input yields an empty, non-nil slice.
func Flatten(nested []any) []any {
	flat := make([]any, 0, len(nested))
	for _, elem := range nested {
		if inner, ok := elem.([]any); ok {
			flat = append(flat, Flatten(inner)...)
			continue
		}
		flat = append(flat, elem)
	}
	return flat
}
