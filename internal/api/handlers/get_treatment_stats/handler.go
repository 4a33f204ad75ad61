package get_treatment_stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	reportService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/reports"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/reports/models"
)

const (
	msgInvalidDate   = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidPeriod = "período de reporte inválido"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/treatments
// Query params: from, to (YYYY-MM-DD, both optional; default last 30 days)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.TreatmentStatsRequest{}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /reports/treatments - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /reports/treatments - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		// The bound is inclusive of the whole end date.
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	result, err := h.service.TreatmentStats(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reportService.ErrInvalidInput):
			h.logger.Warn("GET /reports/treatments - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/treatments - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/treatments - Report built: rows=%d", len(result.Stats))
	handlers.RespondJSON(w, http.StatusOK, result)
}
