package get_calendar

import (
	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	getCalendar "github.com/davidrm-dev/BarberShop-BookingService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Today string        `json:"today"`
	Days  []CalendarDay `json:"days"`
}

// CalendarDay is one cell of the booking calendar grid.
type CalendarDay struct {
	Date       string `json:"date"`
	Class      string `json:"class"`
	Selectable bool   `json:"selectable"`
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = CalendarDay{
			Date:       day.Date.Format(domain.DateFormat),
			Class:      string(day.Class),
			Selectable: day.Class.IsBookable(),
		}
	}

	return &CalendarResponse{
		Today: resp.Today.Format(domain.DateFormat),
		Days:  days,
	}
}
