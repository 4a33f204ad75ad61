package domain

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

// DateClass is the bookability classification of a calendar date.
type DateClass string

const (
	DateSelectable  DateClass = "selectable"
	DatePast        DateClass = "past"
	DateSunday      DateClass = "sunday"
	DateTooFarAhead DateClass = "too_far_ahead"
	DateToday       DateClass = "today"
)

// IsBookable reports whether appointments may be created on a date with
// this classification. Today is bookable, subject to per-slot checks.
func (c DateClass) IsBookable() bool {
	return c == DateSelectable || c == DateToday
}

// SlotState is the bookability classification of a single time slot.
type SlotState string

const (
	SlotSelectable  SlotState = "selectable"
	SlotPast        SlotState = "past"
	SlotBooked      SlotState = "booked"
	SlotUnavailable SlotState = "unavailable" // fixed-closed, independent of bookings
)

// SlotView is one classified slot of a day.
type SlotView struct {
	Time  types.TimeString
	State SlotState
}

// IsSelectable reports whether the slot can be picked.
func (s SlotView) IsSelectable() bool {
	return s.State == SlotSelectable
}

// CalendarDay is one classified date of the calendar window.
type CalendarDay struct {
	Date  time.Time
	Class DateClass
}
