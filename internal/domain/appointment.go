package domain

import (
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Appointment represents a booked visit to the barbershop.
type Appointment struct {
	ID   int64
	Code string // public confirmation code (UUID), safe to hand to the client

	ClientID int64

	// ScheduledStart is the absolute UTC instant of the visit. The local
	// slot time is always derived from it in the shop's timezone.
	ScheduledStart  time.Time
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history: treatments may be renamed or
	// repriced later, the appointment keeps what was sold.
	ClientName       string
	ClientPhone      string
	TreatmentIDs     []int64
	TreatmentSummary string
	TotalPrice       float64

	Notes *string

	CancellationReason *string
	CanceledAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot reports whether the appointment occupies its time slot.
// Only canceled appointments release the slot.
func (a *Appointment) BlocksSlot() bool {
	return a.Status != StatusCanceled
}

// CanBeCanceled returns true if the appointment can still be canceled.
func (a *Appointment) CanBeCanceled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCanceled returns true if the appointment has been canceled.
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// LocalStart returns the visit's wall-clock time in the shop's zone.
func (a *Appointment) LocalStart(loc *time.Location) time.Time {
	return a.ScheduledStart.In(loc)
}

// AppointmentsFilter narrows admin appointment listings.
type AppointmentsFilter struct {
	From            *time.Time         // start of period (UTC instant), optional
	To              *time.Time         // end of period (UTC instant), optional
	Status          *AppointmentStatus // optional
	ClientPhone     *string            // optional exact match
	IncludeCanceled bool
	Limit           uint64 // 0 = no limit
	Offset          uint64
}
