package update_treatment

import (
	"context"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments/models"
)

type TreatmentService interface {
	Update(ctx context.Context, id int64, req *models.UpdateTreatmentRequest) (*models.TreatmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
