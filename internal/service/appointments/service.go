package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	appointmentRepo "github.com/davidrm-dev/BarberShop-BookingService/internal/infra/storage/appointment"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/appointments/models"
)

// Service manages appointments after they are booked: client lookups by
// confirmation code and the admin listing/status flows.
type Service struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	logger          Logger
}

// NewService creates a new appointments service instance.
func NewService(appointmentRepo AppointmentRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		location:        location,
		logger:          logger,
	}
}

// GetByCode fetches an appointment by its public confirmation code. This is
// the client-facing lookup, so it never exposes numeric ids for guessing.
func (s *Service) GetByCode(ctx context.Context, code string) (*models.AppointmentResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	s.logger.Info("GetByCode: fetching appointment code=%s", code)

	appt, err := s.appointmentRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByCode: appointment code=%s not found", code)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt, s.location), nil
}

// List fetches appointments for the admin screen with optional filters.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, status=%v, phone=%v, includeCanceled=%v",
		req.Status, req.ClientPhone, req.IncludeCanceled)

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		s.logger.Warn("List: period end before start")
		return nil, fmt.Errorf("%w: period end before start", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments, s.location), nil
}

// Cancel cancels an appointment. Only pending and confirmed appointments
// can be canceled; canceling is what releases the slot.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: canceling appointment id=%d", id)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCanceled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be canceled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully canceled appointment id=%d", id)
	return nil
}

// UpdateStatus moves an appointment to a new lifecycle state (admin only).
// Canceling through this path is rejected: Cancel records the reason and
// the timestamp, a bare status write would lose them.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return ErrInvalidStatus
	}
	if newStatus == domain.StatusCanceled {
		s.logger.Warn("UpdateStatus: appointment id=%d must be canceled via Cancel", id)
		return fmt.Errorf("%w: use the cancel operation to cancel", ErrInvalidStatus)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return nil
}
