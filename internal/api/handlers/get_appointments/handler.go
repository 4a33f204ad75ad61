package get_appointments

import (
	"errors"
	"net/http"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/appointments"
)

const (
	msgInvalidQuery  = "parámetros de búsqueda inválidos"
	msgInvalidStatus = "estado de cita inválido"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: from, to (YYYY-MM-DD), status, clientPhone, includeCanceled, limit, offset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /appointments - Invalid status: %v", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
