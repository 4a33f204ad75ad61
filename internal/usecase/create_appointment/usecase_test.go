package create_appointment

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

type stubAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
	nextID   int64
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	out := *appt
	out.ID = s.nextID
	out.CreatedAt = time.Now().UTC()
	out.UpdatedAt = out.CreatedAt
	s.created = &out
	return &out, nil
}

func (s *stubAppointmentRepo) ListWithFilter(context.Context, domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return s.existing, nil
}

type stubClientRepo struct{}

func (stubClientRepo) UpsertByPhone(_ context.Context, name, phone string) (*domain.Client, error) {
	return &domain.Client{ID: 7, Name: name, Phone: phone}, nil
}

type stubTreatmentRepo struct {
	treatments []*domain.Treatment
}

func (s *stubTreatmentRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Treatment, error) {
	var found []*domain.Treatment
	for _, t := range s.treatments {
		for _, id := range ids {
			if t.ID == id {
				found = append(found, t)
			}
		}
	}
	return found, nil
}

type stubScheduleRepo struct {
	week domain.WeekSchedule
}

func (s *stubScheduleRepo) GetWeek(context.Context) (domain.WeekSchedule, error) {
	return s.week, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubSMSSender struct {
	sentTo  string
	sentMsg string
	err     error
}

func (s *stubSMSSender) Send(_ context.Context, phone, message string) error {
	s.sentTo = phone
	s.sentMsg = message
	return s.err
}

type fixture struct {
	uc           *UseCase
	appointments *stubAppointmentRepo
	sms          *stubSMSSender
}

func newFixture(now time.Time) *fixture {
	appointments := &stubAppointmentRepo{nextID: 42}
	treatments := &stubTreatmentRepo{
		treatments: []*domain.Treatment{
			{ID: 1, Name: "Corte clásico", Price: 250, DurationMinutes: 45},
			{ID: 2, Name: "Afeitado", Price: 150, DurationMinutes: 30},
		},
	}
	sms := &stubSMSSender{}
	uc := NewUseCase(
		appointments,
		stubClientRepo{},
		treatments,
		&stubScheduleRepo{week: domain.WeekSchedule{}},
		passthroughTxManager{},
		sms,
		testZone,
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: now}
	return &fixture{uc: uc, appointments: appointments, sms: sms}
}

func validRequest() *Request {
	return &Request{
		ClientName:   "Juan Pérez",
		ClientPhone:  "+52 555 123 4567",
		TreatmentIDs: []int64{1, 2},
		Date:         time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), // Tuesday
		StartTime:    "14:00",
	}
}

func TestExecuteHappyPath(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone) // Monday
	f := newFixture(now)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.NotEmpty(t, resp.Code)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// 14:00 at UTC-6 is 20:00 UTC.
	assert.Equal(t, time.Date(2024, 6, 11, 20, 0, 0, 0, time.UTC), resp.ScheduledStart.UTC())

	assert.Equal(t, "Corte clásico, Afeitado", resp.TreatmentSummary)
	assert.Equal(t, float64(400), resp.TotalPrice)
	assert.Equal(t, 75, resp.DurationMinutes)

	require.NotNil(t, f.appointments.created)
	assert.Equal(t, domain.StatusPending, f.appointments.created.Status)
	assert.Equal(t, int64(7), f.appointments.created.ClientID)

	assert.Equal(t, resp.ClientPhone, f.sms.sentTo)
	assert.Contains(t, f.sms.sentMsg, resp.Code)
}

func TestExecuteSlotAlreadyTaken(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)
	f := newFixture(now)
	f.appointments.existing = []*domain.Appointment{
		{
			ScheduledStart: time.Date(2024, 6, 11, 20, 0, 0, 0, time.UTC), // 14:00 local
			Status:         domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.appointments.created)
}

func TestExecuteCanceledDoesNotBlock(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)
	f := newFixture(now)
	f.appointments.existing = []*domain.Appointment{
		{
			ScheduledStart: time.Date(2024, 6, 11, 20, 0, 0, 0, time.UTC),
			Status:         domain.StatusCanceled,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, f.appointments.created)
}

func TestExecuteFixedClosedSlot(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)
	f := newFixture(now)
	req := validRequest()
	req.StartTime = domain.FixedClosedSlot

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecuteDateClassErrors(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)

	tests := []struct {
		name string
		date time.Time
		want error
	}{
		{name: "past date", date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), want: ErrInvalidDate},
		{name: "sunday", date: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), want: ErrShopClosed},
		{name: "beyond horizon", date: time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC), want: ErrDateTooFarAhead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(now)
			req := validRequest()
			req.Date = tt.date

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, f.appointments.created)
		})
	}
}

func TestExecuteTimeNotASlot(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)
	f := newFixture(now)
	req := validRequest()
	req.StartTime = "15:00" // inside the fixed afternoon break

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecutePastSlotToday(t *testing.T) {
	now := time.Date(2024, 6, 11, 16, 30, 0, 0, testZone) // Tuesday afternoon
	f := newFixture(now)
	req := validRequest()
	req.StartTime = "14:00" // already gone

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecuteUnknownTreatment(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)
	f := newFixture(now)
	req := validRequest()
	req.TreatmentIDs = []int64{1, 99}

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTreatmentNotFound)
}

func TestExecuteValidation(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.ClientName = "  " }},
		{name: "missing phone", mutate: func(r *Request) { r.ClientPhone = "" }},
		{name: "no treatments", mutate: func(r *Request) { r.TreatmentIDs = nil }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "bad time format", mutate: func(r *Request) { r.StartTime = "2:30 PM" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(now)
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteSMSFailureDoesNotFailBooking(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)
	f := newFixture(now)
	f.sms.err = errors.New("gateway timeout")

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NotNil(t, f.appointments.created)
}

func TestExecuteDuplicateTreatmentIDsCollapse(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, testZone)
	f := newFixture(now)
	req := validRequest()
	req.TreatmentIDs = []int64{1, 1, 2}

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, resp.TreatmentIDs)
	assert.Equal(t, float64(400), resp.TotalPrice)
}

func TestSummarizeTreatmentsFallbackDuration(t *testing.T) {
	summary, price, minutes := summarizeTreatments([]*domain.Treatment{
		{Name: "Consulta", Price: 0, DurationMinutes: 0},
	})

	assert.Equal(t, "Consulta", summary)
	assert.Equal(t, float64(0), price)
	assert.Equal(t, domain.DefaultAppointmentMinutes, minutes)
}

func TestContainsSlot(t *testing.T) {
	slots := []types.TimeString{"08:00", "09:00"}

	assert.True(t, containsSlot(slots, "09:00"))
	assert.False(t, containsSlot(slots, "12:00"))
}
