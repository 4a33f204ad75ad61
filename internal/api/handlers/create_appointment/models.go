package create_appointment

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	createAppointment "github.com/davidrm-dev/BarberShop-BookingService/internal/usecase/create_appointment"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName   string  `json:"clientName"`
	ClientPhone  string  `json:"clientPhone"`
	TreatmentIDs []int64 `json:"treatmentIds"`
	Date         string  `json:"date"`      // "2026-03-02"
	StartTime    string  `json:"startTime"` // "14:00"
	Notes        *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID               int64   `json:"id"`
	Code             string  `json:"code"`
	ClientID         int64   `json:"clientId"`
	ClientName       string  `json:"clientName"`
	ClientPhone      string  `json:"clientPhone"`
	Date             string  `json:"date"`
	StartTime        string  `json:"startTime"`
	DurationMinutes  int     `json:"durationMinutes"`
	Status           string  `json:"status"`
	TreatmentIDs     []int64 `json:"treatmentIds"`
	TreatmentSummary string  `json:"treatmentSummary"`
	TotalPrice       float64 `json:"totalPrice"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and the slot time.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName:   r.ClientName,
		ClientPhone:  r.ClientPhone,
		TreatmentIDs: r.TreatmentIDs,
		Date:         date,
		StartTime:    startTime,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		Code:             resp.Code,
		ClientID:         resp.ClientID,
		ClientName:       resp.ClientName,
		ClientPhone:      resp.ClientPhone,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Status:           resp.Status,
		TreatmentIDs:     resp.TreatmentIDs,
		TreatmentSummary: resp.TreatmentSummary,
		TotalPrice:       resp.TotalPrice,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
