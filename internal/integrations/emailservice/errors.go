package emailservice

import "errors"

var (
	// ErrInternal is returned for request construction and transport failures.
	ErrInternal = errors.New("emailservice client: internal error")

	// ErrSendRejected is returned when the provider rejects the send.
	ErrSendRejected = errors.New("emailservice client: send rejected")

	// ErrDisabled is returned when the client is configured off.
	ErrDisabled = errors.New("emailservice client: disabled")
)
