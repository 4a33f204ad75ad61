package models

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// Request models

// TreatmentStatsRequest bounds the reporting period. Missing bounds
// default to the last 30 days.
type TreatmentStatsRequest struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Response models

// TreatmentStatResponse is one row of the popularity report.
type TreatmentStatResponse struct {
	TreatmentID  int64   `json:"treatmentId"`
	Name         string  `json:"name"`
	Appointments int64   `json:"appointments"`
	Revenue      float64 `json:"revenue"`
}

// TreatmentStatsResponse is the popularity report for a period.
type TreatmentStatsResponse struct {
	From  time.Time               `json:"from"`
	To    time.Time               `json:"to"`
	Stats []TreatmentStatResponse `json:"stats"`
}

// Conversion helpers

// FromDomainStats converts the aggregate rows into the DTO.
func FromDomainStats(stats []*domain.TreatmentStat, from, to time.Time) *TreatmentStatsResponse {
	resp := &TreatmentStatsResponse{
		From:  from,
		To:    to,
		Stats: make([]TreatmentStatResponse, 0, len(stats)),
	}

	for _, st := range stats {
		if st == nil {
			continue
		}
		resp.Stats = append(resp.Stats, TreatmentStatResponse{
			TreatmentID:  st.TreatmentID,
			Name:         st.Name,
			Appointments: st.Appointments,
			Revenue:      st.Revenue,
		})
	}

	return resp
}
