// Package availability holds the booking-slot computation: which calendar
// dates can be picked, which time slots a day offers, and how a picked
// slot becomes a UTC instant. Everything here is a pure function of its
// arguments; "now" is always passed in and all dates are interpreted in
// the shop's wall-clock zone (the Location of the time values handed in).
package availability

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

// WeekWindow returns the fixed calendar grid around now: exactly
// domain.CalendarWindowDays consecutive dates starting CalendarWeeksBack
// whole weeks before the nearest past-or-current Sunday. The grid size is
// independent of the day of week, so the UI always renders four rows.
func WeekWindow(now time.Time) []time.Time {
	today := dateOnly(now)
	sunday := today.AddDate(0, 0, -int(today.Weekday()))
	start := sunday.AddDate(0, 0, -7*domain.CalendarWeeksBack)

	days := make([]time.Time, domain.CalendarWindowDays)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// ClassifyDate classifies a calendar date against now. Disabled classes
// take precedence in the order past, sunday, too far ahead; today is a
// distinguished bookable class (its slots are additionally filtered
// against the current time).
func ClassifyDate(date, now time.Time) domain.DateClass {
	day := dateOnly(date)
	today := dateOnly(now)

	switch {
	case day.Before(today):
		return domain.DatePast
	case day.Weekday() == time.Sunday:
		return domain.DateSunday
	case !day.Before(today.AddDate(0, 0, domain.BookingHorizonDays+1)):
		return domain.DateTooFarAhead
	case day.Equal(today):
		return domain.DateToday
	default:
		return domain.DateSelectable
	}
}

// DaySlots resolves the candidate slot times for a date. Business days
// (Monday through Saturday) always use the fixed default grid; the stored
// week schedule is only consulted for days outside that set. An empty
// result means the day offers no times at all.
func DaySlots(date time.Time, week domain.WeekSchedule) []types.TimeString {
	day := date.Weekday()
	if day != time.Sunday {
		slots := make([]types.TimeString, len(domain.DefaultOpenHours))
		copy(slots, domain.DefaultOpenHours)
		return slots
	}
	return week.HoursFor(day)
}

// ClassifySlot classifies a single slot of a date against now and the
// existing appointments. A slot is past only when the date is today and
// the slot time is strictly earlier than the current time. A slot is
// booked when a slot-blocking appointment falls on the same local date at
// the exact same local time of day; occupancy is an exact time-of-day
// match, not an interval overlap.
func ClassifySlot(date time.Time, slot types.TimeString, now time.Time, appointments []*domain.Appointment) domain.SlotState {
	if sameDay(date, now) && slot.IsBefore(types.NewTimeString(now)) {
		return domain.SlotPast
	}

	loc := date.Location()
	for _, appt := range appointments {
		if !appt.BlocksSlot() {
			continue
		}
		local := appt.LocalStart(loc)
		if sameDay(local, date) && types.NewTimeString(local).Equal(slot) {
			return domain.SlotBooked
		}
	}

	return domain.SlotSelectable
}

// DaySlotViews resolves and classifies every slot of a date in one pass.
// On the default grid the fixed closed slot is reported unavailable before
// any other classification applies.
func DaySlotViews(date time.Time, week domain.WeekSchedule, now time.Time, appointments []*domain.Appointment) []domain.SlotView {
	slots := DaySlots(date, week)
	defaultGrid := date.Weekday() != time.Sunday

	views := make([]domain.SlotView, 0, len(slots))
	for _, slot := range slots {
		if defaultGrid && slot.Equal(domain.FixedClosedSlot) {
			views = append(views, domain.SlotView{Time: slot, State: domain.SlotUnavailable})
			continue
		}
		views = append(views, domain.SlotView{
			Time:  slot,
			State: ClassifySlot(date, slot, now, appointments),
		})
	}
	return views
}

// BookingInstant combines a calendar date and a slot time in the shop's
// zone and returns the UTC instant to persist. Malformed slot strings are
// a caller bug; the error return is the Go-shaped contract for it.
func BookingInstant(date time.Time, slot types.TimeString, loc *time.Location) (time.Time, error) {
	local, err := slot.At(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return local.UTC(), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
