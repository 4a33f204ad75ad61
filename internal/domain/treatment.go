package domain

import "time"

// Treatment is a service offered by the barbershop (cut, shave, tint...).
type Treatment struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TreatmentStat is a per-treatment aggregate for the reports screen.
type TreatmentStat struct {
	TreatmentID  int64
	Name         string
	Appointments int64
	Revenue      float64
}
