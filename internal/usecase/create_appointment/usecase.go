package create_appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/availability"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/ptr"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

// UseCase creates an appointment. The availability re-check and the insert
// run in one serializable transaction: this is the server-side backstop
// for two customers racing to the same slot, which the booking page itself
// cannot detect.
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	treatmentRepo   TreatmentRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	smsSender       SMSSender
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new use case instance. smsSender may be nil when
// confirmations are disabled.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	treatmentRepo TreatmentRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	smsSender SMSSender,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		treatmentRepo:   treatmentRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		smsSender:       smsSender,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the booking flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: phone=%s, date=%s, time=%s, treatments=%v",
		req.ClientPhone, req.Date.Format(domain.DateFormat), req.StartTime, req.TreatmentIDs)

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Anchor the clock and the date in the shop's zone.
	now := uc.timeProvider.Now().In(uc.location)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	// 3. Load the treatments; all requested ids must exist.
	ids := uniqueIDs(req.TreatmentIDs)
	treatments, err := uc.treatmentRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get treatments: %v", err)
		return nil, fmt.Errorf("%w: failed to get treatments: %v", ErrInternal, err)
	}
	if len(treatments) != len(ids) {
		uc.logger.Warn("CreateAppointment: unknown treatment in %v", ids)
		return nil, ErrTreatmentNotFound
	}

	summary, totalPrice, totalMinutes := summarizeTreatments(treatments)

	var result *domain.Appointment

	// 4. Availability re-check and insert, serializable.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. The date must be bookable.
		switch class := availability.ClassifyDate(date, now); class {
		case domain.DatePast:
			return ErrInvalidDate
		case domain.DateSunday:
			return ErrShopClosed
		case domain.DateTooFarAhead:
			return ErrDateTooFarAhead
		}

		// 4.2. The time must be one of the day's slots.
		week, err := uc.scheduleRepo.GetWeek(txCtx)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		slots := availability.DaySlots(date, week)
		if !containsSlot(slots, req.StartTime) {
			uc.logger.Warn("CreateAppointment: time %s is not a slot of %s",
				req.StartTime, date.Format(domain.DateFormat))
			return ErrInvalidTimeSlot
		}
		if date.Weekday() != time.Sunday && req.StartTime.Equal(domain.FixedClosedSlot) {
			uc.logger.Warn("CreateAppointment: time %s is fixed-closed", req.StartTime)
			return ErrSlotNotAvailable
		}

		// 4.3. Fetch the day's appointments with the row lock held.
		appointments, err := uc.appointmentRepo.ListWithFilter(txCtx, domain.AppointmentsFilter{
			From: ptr.Ptr(date.UTC()),
			To:   ptr.Ptr(date.AddDate(0, 0, 1).UTC()),
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.4. The slot itself must still be free.
		switch state := availability.ClassifySlot(date, req.StartTime, now, appointments); state {
		case domain.SlotPast:
			return ErrTooLateToBook
		case domain.SlotBooked:
			uc.logger.Warn("CreateAppointment: slot %s %s already taken",
				date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotNotAvailable
		}

		// 4.5. Upsert the client by phone.
		client, err := uc.clientRepo.UpsertByPhone(txCtx, strings.TrimSpace(req.ClientName), strings.TrimSpace(req.ClientPhone))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to upsert client: %v", err)
			return fmt.Errorf("%w: failed to upsert client: %v", ErrInternal, err)
		}

		// 4.6. The persisted value is a single UTC instant.
		instant, err := availability.BookingInstant(date, req.StartTime, uc.location)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to build instant: %v", err)
			return fmt.Errorf("%w: failed to build booking instant: %v", ErrInternal, err)
		}

		appt := &domain.Appointment{
			Code:            uuid.NewString(),
			ClientID:        client.ID,
			ScheduledStart:  instant,
			DurationMinutes: totalMinutes,
			Status:          domain.StatusPending,
			// Denormalized for history.
			ClientName:       client.Name,
			ClientPhone:      client.Phone,
			TreatmentIDs:     ids,
			TreatmentSummary: summary,
			TotalPrice:       totalPrice,
			Notes:            req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d code=%s", result.ID, result.Code)

	// 5. Confirmation SMS, best effort. A gateway failure never fails the
	// booking; it is logged and the customer simply gets no text.
	if uc.smsSender != nil {
		message := fmt.Sprintf("Tu cita en la barbería está reservada para el %s a las %s. Código: %s",
			date.Format(domain.DateFormat), req.StartTime, result.Code)
		if err := uc.smsSender.Send(ctx, result.ClientPhone, message); err != nil {
			uc.logger.Error("CreateAppointment: confirmation SMS failed for appointment id=%d: %v", result.ID, err)
		}
	}

	return &Response{
		ID:               result.ID,
		Code:             result.Code,
		ClientID:         result.ClientID,
		ClientName:       result.ClientName,
		ClientPhone:      result.ClientPhone,
		ScheduledStart:   result.ScheduledStart,
		Date:             date,
		StartTime:        req.StartTime,
		DurationMinutes:  result.DurationMinutes,
		Status:           string(result.Status),
		TreatmentIDs:     result.TreatmentIDs,
		TreatmentSummary: result.TreatmentSummary,
		TotalPrice:       result.TotalPrice,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// summarizeTreatments denormalizes what was sold: a readable summary, the
// total price and the total duration.
func summarizeTreatments(treatments []*domain.Treatment) (summary string, totalPrice float64, totalMinutes int) {
	names := make([]string, len(treatments))
	for i, t := range treatments {
		names[i] = t.Name
		totalPrice += t.Price
		totalMinutes += t.DurationMinutes
	}
	if totalMinutes == 0 {
		totalMinutes = domain.DefaultAppointmentMinutes
	}
	return strings.Join(names, ", "), totalPrice, totalMinutes
}

func containsSlot(slots []types.TimeString, slot types.TimeString) bool {
	for _, s := range slots {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}
