package get_availability

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// Request asks for the slot availability of one calendar date.
type Request struct {
	Date time.Time // calendar date, time-of-day ignored
}

// Response carries the date classification and, for bookable dates, every
// slot of the day with its state. An empty slot list on a bookable date
// means the day offers no times ("no hay horarios").
type Response struct {
	Date  time.Time
	Class domain.DateClass
	Slots []domain.SlotView
}
