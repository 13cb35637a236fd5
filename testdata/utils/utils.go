package utils

// Ptr returns a pointer to v. Shorthand for building test fixtures
// with optional fields.
func Ptr[T any](v T) *T {
	return &v
}
