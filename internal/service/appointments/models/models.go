package models

import (
	"errors"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status value.
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// ListAppointmentsRequest filters the admin appointment listing.
type ListAppointmentsRequest struct {
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	Status          *string    `json:"status,omitempty"`
	ClientPhone     *string    `json:"clientPhone,omitempty"`
	IncludeCanceled bool       `json:"includeCanceled,omitempty"`
	Limit           uint64     `json:"limit,omitempty"`
	Offset          uint64     `json:"offset,omitempty"`
}

// ToDomainFilter converts the request into a storage filter.
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		From:            r.From,
		To:              r.To,
		ClientPhone:     r.ClientPhone,
		IncludeCanceled: r.IncludeCanceled,
		Limit:           r.Limit,
		Offset:          r.Offset,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelAppointmentRequest carries the optional cancellation reason.
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest moves an appointment to a new lifecycle state.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// AppointmentResponse is the appointment as shown to clients and admins.
// Date and startTime are the visit's wall-clock values in the shop zone;
// scheduledStart is the underlying UTC instant.
type AppointmentResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`

	ClientID    int64  `json:"clientId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`

	Date            string    `json:"date"`      // "2026-03-02"
	StartTime       string    `json:"startTime"` // "14:00"
	ScheduledStart  time.Time `json:"scheduledStart"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`

	TreatmentIDs     []int64 `json:"treatmentIds"`
	TreatmentSummary string  `json:"treatmentSummary"`
	TotalPrice       float64 `json:"totalPrice"`

	Notes *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CanceledAt         *string `json:"canceledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse is the admin listing payload.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Conversion helpers

// FromDomainAppointment converts the domain model into a DTO, localizing
// the start instant into loc.
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}

	local := a.LocalStart(loc)

	resp := &AppointmentResponse{
		ID:                 a.ID,
		Code:               a.Code,
		ClientID:           a.ClientID,
		ClientName:         a.ClientName,
		ClientPhone:        a.ClientPhone,
		Date:               local.Format(domain.DateFormat),
		StartTime:          local.Format(domain.TimeFormat),
		ScheduledStart:     a.ScheduledStart,
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		TreatmentIDs:       a.TreatmentIDs,
		TreatmentSummary:   a.TreatmentSummary,
		TotalPrice:         a.TotalPrice,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CanceledAt != nil {
		canceledStr := a.CanceledAt.Format(time.RFC3339)
		resp.CanceledAt = &canceledStr
	}

	return resp
}

// FromDomainAppointmentList converts a slice of domain models into the
// listing DTO.
func FromDomainAppointmentList(appointments []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if dto := FromDomainAppointment(a, loc); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}

// ToDomainStatus converts a string into a validated status.
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
