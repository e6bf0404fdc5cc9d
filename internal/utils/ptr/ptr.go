// Package ptr holds helpers for the optional (pointer) values used for
// prices that may be absent.
package ptr

// To creates a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Float64 creates a pointer to the given float64 value.
func Float64(f float64) *float64 {
	return &f
}

// Equal reports whether two optional values are both absent or both present and equal.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Min returns the smaller of two optional floats, treating absent as unknown
// rather than zero. It returns nil only when both are absent.
func Min(a, b *float64) *float64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b < *a:
		return b
	default:
		return a
	}
}
