package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrTreatmentNotFound is returned when a requested treatment does not exist.
	ErrTreatmentNotFound = errors.New("create_appointment: treatment not found")

	// ErrInvalidDate is returned when the date is in the past.
	ErrInvalidDate = errors.New("create_appointment: invalid booking date")

	// ErrDateTooFarAhead is returned when the date is outside the booking horizon.
	ErrDateTooFarAhead = errors.New("create_appointment: date is outside the booking horizon")

	// ErrShopClosed is returned when the shop does not open on the date.
	ErrShopClosed = errors.New("create_appointment: shop is closed on this date")

	// ErrInvalidTimeSlot is returned when the time is not one of the day's slots.
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook is returned when the slot is already in the past today.
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotNotAvailable is returned when the slot is taken or fixed-closed.
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("create_appointment: internal error")
)
