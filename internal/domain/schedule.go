package domain

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

// DaySchedule is the list of bookable slot start times for one weekday,
// as maintained in the back office.
type DaySchedule struct {
	Day       time.Weekday
	OpenHours []types.TimeString
	UpdatedAt time.Time
}

// WeekSchedule maps each weekday to its schedule. Missing days mean no
// configured hours for that day.
type WeekSchedule map[time.Weekday]DaySchedule

// HoursFor returns the configured open hours for day, or nil when the day
// has no schedule row.
func (w WeekSchedule) HoursFor(day time.Weekday) []types.TimeString {
	sched, ok := w[day]
	if !ok {
		return nil
	}
	return sched.OpenHours
}
