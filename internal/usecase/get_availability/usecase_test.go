package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

var testZone = time.FixedZone("UTC-6", -6*60*60)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubScheduleRepo struct {
	week domain.WeekSchedule
	err  error
}

func (s *stubScheduleRepo) GetWeek(context.Context) (domain.WeekSchedule, error) {
	return s.week, s.err
}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    *domain.AppointmentsFilter
}

func (s *stubAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.gotFilter = &filter
	return s.appointments, s.err
}

func newTestUseCase(schedules *stubScheduleRepo, appointments *stubAppointmentRepo, now time.Time) *UseCase {
	uc := NewUseCase(schedules, appointments, testZone, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecuteBookableDay(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone) // Monday
	appointments := &stubAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ScheduledStart: time.Date(2024, 6, 11, 18, 0, 0, 0, time.UTC), // 12:00 local
				Status:         domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(&stubScheduleRepo{week: domain.WeekSchedule{}}, appointments, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DateSelectable, resp.Class)
	require.Len(t, resp.Slots, 9)

	states := make(map[types.TimeString]domain.SlotState)
	for _, s := range resp.Slots {
		states[s.Time] = s.State
	}
	assert.Equal(t, domain.SlotBooked, states["12:00"])
	assert.Equal(t, domain.SlotUnavailable, states["10:00"])
	assert.Equal(t, domain.SlotSelectable, states["09:00"])

	// The repository was asked for exactly the local day, in UTC bounds.
	require.NotNil(t, appointments.gotFilter)
	assert.Equal(t, time.Date(2024, 6, 11, 6, 0, 0, 0, time.UTC), appointments.gotFilter.From.UTC())
	assert.Equal(t, time.Date(2024, 6, 12, 6, 0, 0, 0, time.UTC), appointments.gotFilter.To.UTC())
}

func TestExecuteDisabledDatesCarryNoSlots(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)
	schedules := &stubScheduleRepo{week: domain.WeekSchedule{}}
	appointments := &stubAppointmentRepo{}
	uc := newTestUseCase(schedules, appointments, now)

	tests := []struct {
		name string
		date time.Time
		want domain.DateClass
	}{
		{name: "sunday", date: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), want: domain.DateSunday},
		{name: "past", date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), want: domain.DatePast},
		{name: "beyond horizon", date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), want: domain.DateTooFarAhead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Class)
			assert.Empty(t, resp.Slots)
		})
	}

	// No storage round-trips for disabled dates.
	assert.Nil(t, appointments.gotFilter)
}

func TestExecuteScheduleFetchFailure(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)
	schedules := &stubScheduleRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(schedules, &stubAppointmentRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteMissingDate(t *testing.T) {
	uc := newTestUseCase(&stubScheduleRepo{}, &stubAppointmentRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
