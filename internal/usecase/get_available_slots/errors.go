package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotBookable is returned for inactive catalog entries.
	ErrServiceNotBookable = errors.New("service is not bookable")

	// ErrInvalidDate is returned for a past or zero booking date.
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput is returned for malformed request fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures. Note that a failed
	// appointments or blocked-times read surfaces here: availability is never
	// computed by assuming nothing is booked.
	ErrInternal = errors.New("usecase: internal error")
)
