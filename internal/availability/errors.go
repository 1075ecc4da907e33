package availability

import "errors"

var (
	// ErrInvalidHours is returned for malformed business-hour bounds.
	// These are caller contract violations, not runtime conditions.
	ErrInvalidHours = errors.New("availability: invalid business hours")

	// ErrInvalidInterval is returned for a non-positive slot interval.
	ErrInvalidInterval = errors.New("availability: invalid slot interval")

	// ErrInvalidDuration is returned for a non-positive service duration.
	ErrInvalidDuration = errors.New("availability: invalid service duration")
)
