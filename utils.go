package bitfield

// Reverse returns a new slice with the elements of s in opposite
// order. The input is left untouched.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
