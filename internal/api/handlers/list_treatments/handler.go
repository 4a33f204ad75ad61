package list_treatments

import (
	"net/http"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
)

type Handler struct {
	service TreatmentService
	logger  Logger
}

func NewHandler(service TreatmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/treatments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /treatments - Failed to list treatments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /treatments - Listed %d treatments", len(result.Treatments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
