package models

import (
	"sort"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

// Request models

// UpdateDayRequest replaces the stored open hours for one weekday.
type UpdateDayRequest struct {
	Day       int      `json:"day"` // 0 = Sunday ... 6 = Saturday
	OpenHours []string `json:"openHours"`
}

// Response models

// DayScheduleResponse is the stored schedule row for one weekday.
type DayScheduleResponse struct {
	Day       int      `json:"day"`
	DayName   string   `json:"dayName"`
	OpenHours []string `json:"openHours"`
}

// WeekScheduleResponse is the full stored week, all seven days, ordered
// Sunday through Saturday. Days without a stored row come back with empty
// hours rather than being omitted.
type WeekScheduleResponse struct {
	Days []DayScheduleResponse `json:"days"`
}

// Conversion helpers

// FromDomainWeek converts the stored week into the DTO.
func FromDomainWeek(week domain.WeekSchedule) *WeekScheduleResponse {
	resp := &WeekScheduleResponse{
		Days: make([]DayScheduleResponse, 7),
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		hours := week.HoursFor(day)
		strs := make([]string, len(hours))
		for i, h := range hours {
			strs[i] = h.String()
		}
		resp.Days[int(day)] = DayScheduleResponse{
			Day:       int(day),
			DayName:   day.String(),
			OpenHours: strs,
		}
	}

	return resp
}

// FromDomainDay converts one stored day into the DTO.
func FromDomainDay(sched *domain.DaySchedule) *DayScheduleResponse {
	if sched == nil {
		return nil
	}

	strs := make([]string, len(sched.OpenHours))
	for i, h := range sched.OpenHours {
		strs[i] = h.String()
	}

	return &DayScheduleResponse{
		Day:       int(sched.Day),
		DayName:   sched.Day.String(),
		OpenHours: strs,
	}
}

// ToDomainDay validates and converts the request into a domain schedule.
// Hours are canonicalized, deduplicated and sorted.
func (r *UpdateDayRequest) ToDomainDay() (domain.DaySchedule, error) {
	sched := domain.DaySchedule{Day: time.Weekday(r.Day)}

	seen := make(map[types.TimeString]struct{}, len(r.OpenHours))
	hours := make([]types.TimeString, 0, len(r.OpenHours))
	for _, raw := range r.OpenHours {
		h, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return sched, err
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		hours = append(hours, h)
	}

	sort.Slice(hours, func(i, j int) bool { return hours[i].IsBefore(hours[j]) })
	sched.OpenHours = hours

	return sched, nil
}
