package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
	scheduleService "github.com/davidrm-dev/BarberShop-BookingService/internal/service/schedule"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidDay         = "día de la semana inválido, se espera 0 (domingo) a 6 (sábado)"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidHours       = "datos del horario inválidos"
)

type updateDayBody struct {
	OpenHours []string `json:"openHours"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dayStr := vars["day"]

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		h.logger.Warn("PUT /schedule/{day} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	var body updateDayBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /schedule/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDay(r.Context(), &models.UpdateDayRequest{
		Day:       day,
		OpenHours: body.OpenHours,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/{day} - Invalid input: day=%d, error=%v", day, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /schedule/{day} - Failed to update schedule: day=%d, error=%v", day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/{day} - Schedule updated: day=%d, hours=%d", day, len(result.OpenHours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
