package reports

import (
	"context"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// AppointmentRepository is the appointment storage surface the service needs.
type AppointmentRepository interface {
	TreatmentStats(ctx context.Context, from, to time.Time) ([]*domain.TreatmentStat, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service needs.
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
