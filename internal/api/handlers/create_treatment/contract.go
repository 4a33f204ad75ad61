package create_treatment

import (
	"context"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments/models"
)

type TreatmentService interface {
	Create(ctx context.Context, req *models.CreateTreatmentRequest) (*models.TreatmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
