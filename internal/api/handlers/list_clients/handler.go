package list_clients

import (
	"net/http"
	"strconv"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/clients/models"
)

const msgInvalidQuery = "parámetros de búsqueda inválidos"

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients
// Query params: search, limit, offset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListClientsRequest{}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /clients - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.Limit = limit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.ParseUint(offsetStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /clients - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.Offset = offset
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Listed %d clients", len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result)
}
