package get_calendar

import (
	"net/http"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /availability/calendar - Failed to build calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/calendar - Calendar built: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
