package update_treatment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
	treatmentService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments/models"
)

const (
	msgInvalidTreatmentID = "ID de tratamiento inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidTreatment   = "datos del tratamiento inválidos"
	msgNotFound           = "tratamiento no encontrado"
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

// Handle PUT /api/v1/treatments/{treatmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["treatmentId"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /treatments/{id} - Invalid treatment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTreatmentID)
		return
	}

	var req models.UpdateTreatmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /treatments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, treatmentService.ErrTreatmentNotFound):
			h.logger.Warn("PUT /treatments/{id} - Treatment not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, treatmentService.ErrInvalidInput):
			h.logger.Warn("PUT /treatments/{id} - Invalid treatment data: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidTreatment)

		default:
			h.logger.Error("PUT /treatments/{id} - Failed to update treatment: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /treatments/{id} - Treatment updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
