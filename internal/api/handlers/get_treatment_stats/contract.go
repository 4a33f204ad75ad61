package get_treatment_stats

import (
	"context"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/reports/models"
)

type ReportService interface {
	TreatmentStats(ctx context.Context, req *models.TreatmentStatsRequest) (*models.TreatmentStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
