package create_appointment

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

// Request is the booking submission from the public flow.
type Request struct {
	ClientName   string           // customer name from the contact form
	ClientPhone  string           // customer phone, deduplication key
	TreatmentIDs []int64          // chosen treatments, at least one
	Date         time.Time        // calendar date, time-of-day ignored
	StartTime    types.TimeString // chosen slot, canonical "HH:MM"
	Notes        *string          // optional free-text note
}

// Response is the created appointment.
type Response struct {
	ID   int64
	Code string // confirmation code handed back to the customer

	ClientID    int64
	ClientName  string
	ClientPhone string

	ScheduledStart  time.Time // UTC instant
	Date            time.Time // local calendar date
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	TreatmentIDs     []int64
	TreatmentSummary string
	TotalPrice       float64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
