package get_availability

import (
	"context"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// ScheduleRepository is the schedule storage surface the use case needs.
type ScheduleRepository interface {
	GetWeek(ctx context.Context) (domain.WeekSchedule, error)
}

// AppointmentRepository is the appointment storage surface the use case needs.
type AppointmentRepository interface {
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
