package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/availability"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/ptr"
)

// UseCase computes the slot availability for one calendar date.
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new use case instance.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute classifies the requested date and, when it is bookable, every
// slot of that day against the stored schedule and appointments.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: missing date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Rebuild the date and the clock in the shop's zone.
	now := uc.timeProvider.Now().In(uc.location)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	uc.logger.Info("GetAvailability: date=%s", date.Format(domain.DateFormat))

	// 2. Classify the date; disabled dates carry no slots.
	class := availability.ClassifyDate(date, now)
	if !class.IsBookable() {
		uc.logger.Info("GetAvailability: date %s not bookable (%s)", date.Format(domain.DateFormat), class)
		return &Response{
			Date:  date,
			Class: class,
			Slots: []domain.SlotView{},
		}, nil
	}

	// 3. Load the stored week schedule.
	week, err := uc.scheduleRepo.GetWeek(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Load the day's appointments (UTC day bounds of the local date).
	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		From: ptr.Ptr(date.UTC()),
		To:   ptr.Ptr(date.AddDate(0, 0, 1).UTC()),
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Classify every slot of the day.
	slots := availability.DaySlotViews(date, week, now, appointments)

	uc.logger.Info("GetAvailability: date=%s class=%s slots=%d",
		date.Format(domain.DateFormat), class, len(slots))

	return &Response{
		Date:  date,
		Class: class,
		Slots: slots,
	}, nil
}
