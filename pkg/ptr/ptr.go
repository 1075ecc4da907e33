package ptr

// Ptr returns a pointer to v. Convenience for optional fields and filters.
func Ptr[T any](v T) *T {
	return &v
}
