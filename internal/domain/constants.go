package domain

import "github.com/davidrm-dev/BarberShop-BookingService/pkg/types"

// Booking rules
const (
	// BookingHorizonDays is the rolling window within which a visit may be
	// booked: today through today+7 inclusive.
	BookingHorizonDays = 7

	// CalendarWindowDays is the size of the calendar grid shown to the
	// client: four full weeks, two back and two forward around the current
	// one, so the layout stays stable across renders.
	CalendarWindowDays = 28

	// CalendarWeeksBack is how many whole weeks before the current one the
	// calendar window starts.
	CalendarWeeksBack = 2

	DefaultAppointmentMinutes = 60
)

// Business validation constants
const (
	MaxClientNameLength = 120
	MaxPhoneLength      = 20
	MaxNotesLength      = 500

	MaxCancellationReasonLength = 500

	MaxTreatmentNameLength = 120
	MaxTreatmentsPerVisit  = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultOpenHours is the fixed slot grid used for every business day
// (Monday through Saturday): hourly from 8:00 to 18:00 minus the 15:00 and
// 16:00 break. It deliberately overrides whatever the schedule table holds
// for those days; the stored schedule only applies to days outside the
// business-day set. Flagged for product clarification, preserved as shipped.
var DefaultOpenHours = []types.TimeString{
	"08:00",
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"13:00",
	"14:00",
	"17:00",
	"18:00",
}

// FixedClosedSlot is permanently unbookable on the default grid regardless
// of existing appointments (reserved for walk-ins).
var FixedClosedSlot = types.TimeString("10:00")

// BlockingStatuses are the appointment states that occupy a slot.
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// ValidStatuses is the full status taxonomy, used for input validation.
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
}
