package clients

import "errors"

var (
	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
