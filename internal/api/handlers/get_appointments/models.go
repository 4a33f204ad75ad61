package get_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/appointments/models"
)

// ToServiceRequest builds the listing request from query parameters:
// from, to (YYYY-MM-DD), status, clientPhone, includeCanceled, limit, offset.
func ToServiceRequest(query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		// The bound is inclusive of the whole end date.
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if phone := query.Get("clientPhone"); phone != "" {
		req.ClientPhone = &phone
	}

	if query.Get("includeCanceled") == "true" {
		req.IncludeCanceled = true
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.ParseUint(offsetStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}
