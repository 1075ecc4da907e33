package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog entry does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput is returned for malformed catalog fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
