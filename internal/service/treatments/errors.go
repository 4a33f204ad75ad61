package treatments

import "errors"

var (
	// ErrTreatmentNotFound is returned when the treatment does not exist.
	ErrTreatmentNotFound = errors.New("treatment not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
