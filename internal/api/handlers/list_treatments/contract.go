package list_treatments

import (
	"context"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments/models"
)

type TreatmentService interface {
	List(ctx context.Context) (*models.TreatmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
