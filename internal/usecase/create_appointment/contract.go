package create_appointment

import (
	"context"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// AppointmentRepository is the appointment storage surface the use case needs.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ClientRepository is the client storage surface the use case needs.
type ClientRepository interface {
	UpsertByPhone(ctx context.Context, name, phone string) (*domain.Client, error)
}

// TreatmentRepository is the treatment storage surface the use case needs.
type TreatmentRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Treatment, error)
}

// ScheduleRepository is the schedule storage surface the use case needs.
type ScheduleRepository interface {
	GetWeek(ctx context.Context) (domain.WeekSchedule, error)
}

// TransactionManager runs the availability re-check and the insert in one
// serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SMSSender delivers the booking confirmation text. Optional: nil when
// the gateway is disabled.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
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
