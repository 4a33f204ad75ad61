package get_calendar

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// Response is the classified calendar window shown on the booking page.
type Response struct {
	Today time.Time            // today's date in the shop zone
	Days  []domain.CalendarDay // the fixed four-week grid
}
