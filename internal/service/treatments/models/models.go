package models

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// Request models

// CreateTreatmentRequest adds a new treatment to the catalog.
type CreateTreatmentRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// UpdateTreatmentRequest replaces the treatment's attributes.
type UpdateTreatmentRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// Response models

// TreatmentResponse is a catalog entry.
type TreatmentResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TreatmentListResponse is the full catalog.
type TreatmentListResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
}

// Conversion helpers

// FromDomainTreatment converts the domain model into a DTO.
func FromDomainTreatment(t *domain.Treatment) *TreatmentResponse {
	if t == nil {
		return nil
	}

	return &TreatmentResponse{
		ID:              t.ID,
		Name:            t.Name,
		Price:           t.Price,
		DurationMinutes: t.DurationMinutes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// FromDomainTreatmentList converts a slice of domain models into the DTO.
func FromDomainTreatmentList(treatments []*domain.Treatment) *TreatmentListResponse {
	resp := &TreatmentListResponse{
		Treatments: make([]TreatmentResponse, 0, len(treatments)),
	}

	for _, t := range treatments {
		if dto := FromDomainTreatment(t); dto != nil {
			resp.Treatments = append(resp.Treatments, *dto)
		}
	}

	return resp
}
