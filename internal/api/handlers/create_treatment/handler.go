package create_treatment

import (
	"errors"
	"net/http"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
	treatmentService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidTreatment   = "datos del tratamiento inválidos"
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

// Handle POST /api/v1/treatments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTreatmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /treatments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, treatmentService.ErrInvalidInput):
			h.logger.Warn("POST /treatments - Invalid treatment data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTreatment)

		default:
			h.logger.Error("POST /treatments - Failed to create treatment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /treatments - Treatment created: id=%d, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
