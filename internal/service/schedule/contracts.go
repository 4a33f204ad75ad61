package schedule

import (
	"context"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// ScheduleRepository is the schedule storage surface the service needs.
type ScheduleRepository interface {
	GetWeek(ctx context.Context) (domain.WeekSchedule, error)
	UpsertDay(ctx context.Context, sched domain.DaySchedule) (*domain.DaySchedule, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
