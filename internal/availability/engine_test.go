package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

var shopZone = time.FixedZone("UTC-6", -6*60*60)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, shopZone)
}

func appointment(start time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ScheduledStart:  start.UTC(),
		DurationMinutes: 60,
		Status:          status,
	}
}

func TestWeekWindowShape(t *testing.T) {
	// 2024-06-12 is a Wednesday; the nearest past Sunday is 2024-06-09.
	now := time.Date(2024, 6, 12, 11, 30, 0, 0, shopZone)

	window := WeekWindow(now)

	require.Len(t, window, 28)
	assert.Equal(t, date(2024, 6, 9).AddDate(0, 0, -14), window[0])
	for i := 1; i < len(window); i++ {
		assert.Equal(t, window[i-1].AddDate(0, 0, 1), window[i], "window must be consecutive at index %d", i)
	}
}

func TestWeekWindowOnSunday(t *testing.T) {
	// When today is Sunday the window anchors to today itself.
	now := time.Date(2024, 6, 9, 8, 0, 0, 0, shopZone)

	window := WeekWindow(now)

	require.Len(t, window, 28)
	assert.Equal(t, date(2024, 5, 26), window[0])
	assert.Equal(t, date(2024, 6, 22), window[27])
}

func TestClassifyDate(t *testing.T) {
	// Monday
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, shopZone)

	tests := []struct {
		name string
		date time.Time
		want domain.DateClass
	}{
		{name: "yesterday is past", date: date(2024, 6, 9), want: domain.DatePast},
		{name: "distant past", date: date(2024, 1, 1), want: domain.DatePast},
		{name: "today", date: date(2024, 6, 10), want: domain.DateToday},
		{name: "tomorrow selectable", date: date(2024, 6, 11), want: domain.DateSelectable},
		{name: "horizon edge today+7 selectable", date: date(2024, 6, 17), want: domain.DateSelectable},
		{name: "today+8 too far", date: date(2024, 6, 18), want: domain.DateTooFarAhead},
		{name: "today+30 too far", date: date(2024, 7, 10), want: domain.DateTooFarAhead},
		{name: "next sunday", date: date(2024, 6, 16), want: domain.DateSunday},
		{name: "past sunday is past, not sunday", date: date(2024, 6, 9), want: domain.DatePast},
		{name: "sunday beyond horizon is sunday first", date: date(2024, 6, 23), want: domain.DateSunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDate(tt.date, now))
		})
	}
}

func TestSundaysNeverBookable(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, shopZone)

	for week := 0; week < 8; week++ {
		sunday := date(2024, 6, 16).AddDate(0, 0, 7*week)
		class := ClassifyDate(sunday, now)
		assert.False(t, class.IsBookable(), "sunday %s classified %s", sunday.Format(domain.DateFormat), class)
	}
}

func TestDaySlotsBusinessDayUsesDefaultGrid(t *testing.T) {
	// Tuesday with an empty stored schedule still yields the default grid.
	tuesday := date(2024, 6, 11)

	slots := DaySlots(tuesday, domain.WeekSchedule{})

	require.Len(t, slots, 9)
	assert.Equal(t, domain.DefaultOpenHours, slots)
}

func TestDaySlotsBusinessDayIgnoresStoredHours(t *testing.T) {
	tuesday := date(2024, 6, 11)
	week := domain.WeekSchedule{
		time.Tuesday: {Day: time.Tuesday, OpenHours: []types.TimeString{"07:00", "07:30"}},
	}

	// The stored Tuesday hours lose to the fixed grid. Observed behavior,
	// kept on purpose.
	assert.Equal(t, domain.DefaultOpenHours, DaySlots(tuesday, week))
}

func TestDaySlotsSundayFallsBackToStoredSchedule(t *testing.T) {
	sunday := date(2024, 6, 16)
	week := domain.WeekSchedule{
		time.Sunday: {Day: time.Sunday, OpenHours: []types.TimeString{"10:00", "11:00"}},
	}

	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, DaySlots(sunday, week))
	assert.Empty(t, DaySlots(sunday, domain.WeekSchedule{}))
}

func TestClassifySlotPastOnlyForToday(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, shopZone)
	today := date(2024, 6, 10)
	tomorrow := date(2024, 6, 11)

	assert.Equal(t, domain.SlotPast, ClassifySlot(today, "08:00", now, nil))
	assert.Equal(t, domain.SlotSelectable, ClassifySlot(today, "09:00", now, nil))
	assert.Equal(t, domain.SlotSelectable, ClassifySlot(today, "10:00", now, nil))
	assert.Equal(t, domain.SlotSelectable, ClassifySlot(tomorrow, "08:00", now, nil))
}

func TestClassifySlotBooked(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, shopZone)
	day := date(2024, 6, 11)

	booked := []*domain.Appointment{
		appointment(time.Date(2024, 6, 11, 12, 0, 0, 0, shopZone), domain.StatusConfirmed),
	}

	assert.Equal(t, domain.SlotBooked, ClassifySlot(day, "12:00", now, booked))
	assert.Equal(t, domain.SlotSelectable, ClassifySlot(day, "13:00", now, booked))

	// Same time on a different date does not collide.
	assert.Equal(t, domain.SlotSelectable, ClassifySlot(date(2024, 6, 12), "12:00", now, booked))
}

func TestClassifySlotCanceledDoesNotBlock(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, shopZone)
	day := date(2024, 6, 11)

	canceled := []*domain.Appointment{
		appointment(time.Date(2024, 6, 11, 12, 0, 0, 0, shopZone), domain.StatusCanceled),
	}

	assert.Equal(t, domain.SlotSelectable, ClassifySlot(day, "12:00", now, canceled))
}

func TestClassifySlotComparesLocalTimeOfDay(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, shopZone)
	day := date(2024, 6, 11)

	// Stored as UTC instant; 18:00 UTC is 12:00 in the shop zone.
	utcAppt := &domain.Appointment{
		ScheduledStart: time.Date(2024, 6, 11, 18, 0, 0, 0, time.UTC),
		Status:         domain.StatusPending,
	}

	assert.Equal(t, domain.SlotBooked, ClassifySlot(day, "12:00", now, []*domain.Appointment{utcAppt}))
	assert.Equal(t, domain.SlotSelectable, ClassifySlot(day, "18:00", now, []*domain.Appointment{utcAppt}))
}

func TestDaySlotViewsFixedClosedSlot(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, shopZone)
	today := date(2024, 6, 10)

	views := DaySlotViews(today, domain.WeekSchedule{}, now, nil)

	require.Len(t, views, 9)
	byTime := make(map[types.TimeString]domain.SlotState, len(views))
	for _, v := range views {
		byTime[v.Time] = v.State
	}

	assert.Equal(t, domain.SlotPast, byTime["08:00"])
	assert.Equal(t, domain.SlotSelectable, byTime["09:00"])
	// Fixed-closed wins even though 10:00 is otherwise free.
	assert.Equal(t, domain.SlotUnavailable, byTime["10:00"])
	assert.Equal(t, domain.SlotSelectable, byTime["11:00"])
}

func TestDaySlotViewsFixedClosedWinsOverBooked(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, shopZone)
	day := date(2024, 6, 11)

	booked := []*domain.Appointment{
		appointment(time.Date(2024, 6, 11, 10, 0, 0, 0, shopZone), domain.StatusConfirmed),
	}

	views := DaySlotViews(day, domain.WeekSchedule{}, now, booked)
	for _, v := range views {
		if v.Time == "10:00" {
			assert.Equal(t, domain.SlotUnavailable, v.State)
		}
	}
}

func TestBookingInstant(t *testing.T) {
	instant, err := BookingInstant(date(2024, 6, 10), "14:30", shopZone)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10T20:30:00Z", instant.Format(time.RFC3339))

	_, err = BookingInstant(date(2024, 6, 10), "2:30 PM", shopZone)
	assert.Error(t, err, "non-canonical slot strings are a caller bug")
}
