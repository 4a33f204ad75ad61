package smsgateway

import "errors"

var (
	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("smsgateway client: internal error")

	// ErrInvalidResponse is returned when the gateway answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("smsgateway client: invalid response")
)
