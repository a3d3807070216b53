// Package ptr provides small helpers for building pointers to literals,
// used when constructing records whose optional fields are pointers.
package ptr

// To creates a pointer to the given value.
// This is a generic utility function that works with any type.
func To[T any](v T) *T {
	return &v
}

// Float64 creates a pointer to the given float64 value.
func Float64(f float64) *float64 {
	return &f
}

// Int creates a pointer to the given int value.
func Int(i int) *int {
	return &i
}
