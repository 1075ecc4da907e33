package create_booking

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotBookable is returned for inactive catalog entries.
	ErrServiceNotBookable = errors.New("service is not bookable")

	// ErrSlotNotAvailable is returned when the requested slot conflicts with
	// an appointment or blocked window. Retriable: the client should pick
	// another slot.
	ErrSlotNotAvailable = errors.New("slot is no longer available")

	// ErrClosedDate is returned when the business is closed on the date.
	ErrClosedDate = errors.New("closed on this date")

	// ErrInvalidDate is returned for a past or zero booking date.
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidTimeSlot is returned when the start time does not lie on the
	// slot grid inside business hours, or the service would run past closing.
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrTooLateToBook is returned when the slot starts inside the minimum
	// booking notice window.
	ErrTooLateToBook = errors.New("too late to book this slot")

	// ErrInvalidInput is returned for malformed request fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("usecase: internal error")
)
