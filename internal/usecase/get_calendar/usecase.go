package get_calendar

import (
	"context"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/availability"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// UseCase produces the classified booking calendar. It needs no storage:
// the window and the per-date classes are functions of the clock alone.
type UseCase struct {
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new use case instance.
func NewUseCase(location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the calendar window around the current date.
func (uc *UseCase) Execute(_ context.Context) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.location)

	window := availability.WeekWindow(now)
	days := make([]domain.CalendarDay, len(window))
	for i, date := range window {
		days[i] = domain.CalendarDay{
			Date:  date,
			Class: availability.ClassifyDate(date, now),
		}
	}

	uc.logger.Info("GetCalendar: built %d-day window around %s", len(days), now.Format(domain.DateFormat))

	return &Response{
		Today: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.location),
		Days:  days,
	}, nil
}
