package smsservice

import "errors"

var (
	// ErrInternal is returned for request construction and transport failures.
	ErrInternal = errors.New("smsservice client: internal error")

	// ErrSendRejected is returned when the provider rejects the message.
	ErrSendRejected = errors.New("smsservice client: send rejected")

	// ErrInvalidNumber is returned when the provider reports a bad recipient.
	ErrInvalidNumber = errors.New("smsservice client: invalid phone number")
)
