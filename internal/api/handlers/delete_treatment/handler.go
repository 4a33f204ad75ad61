package delete_treatment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
	treatmentService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments"
)

const (
	msgInvalidTreatmentID = "ID de tratamiento inválido"
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

// Handle DELETE /api/v1/treatments/{treatmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["treatmentId"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /treatments/{id} - Invalid treatment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTreatmentID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, treatmentService.ErrTreatmentNotFound):
			h.logger.Warn("DELETE /treatments/{id} - Treatment not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /treatments/{id} - Failed to delete treatment: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /treatments/{id} - Treatment deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
