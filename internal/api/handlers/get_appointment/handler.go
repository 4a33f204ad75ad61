package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/appointments"
)

const (
	msgMissingCode = "el código de confirmación es obligatorio"
	msgNotFound    = "cita no encontrada"
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

// Handle GET /api/v1/appointments/code/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]
	if code == "" {
		h.logger.Warn("GET /appointments/code/{code} - Missing code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	appt, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/code/{code} - Appointment not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/code/{code} - Invalid code: %v", err)
			handlers.RespondBadRequest(w, msgMissingCode)

		default:
			h.logger.Error("GET /appointments/code/{code} - Failed to get appointment: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/code/{code} - Appointment retrieved: id=%d", appt.ID)
	handlers.RespondJSON(w, http.StatusOK, appt)
}
