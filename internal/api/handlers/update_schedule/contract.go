package update_schedule

import (
	"context"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateDay(ctx context.Context, req *models.UpdateDayRequest) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
