package treatments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	treatmentRepo "github.com/davidrm-dev/BarberShop-BookingService/internal/infra/storage/treatment"
	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/treatments/models"
)

// Service manages the treatment catalog. The public booking page reads it;
// create, update and delete are admin operations.
type Service struct {
	treatmentRepo TreatmentRepository
	logger        Logger
}

// NewService creates a new treatments service instance.
func NewService(treatmentRepo TreatmentRepository, logger Logger) *Service {
	return &Service{
		treatmentRepo: treatmentRepo,
		logger:        logger,
	}
}

// List fetches the full treatment catalog.
func (s *Service) List(ctx context.Context) (*models.TreatmentListResponse, error) {
	s.logger.Info("List: fetching treatments")

	treatments, err := s.treatmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d treatments", len(treatments))
	return models.FromDomainTreatmentList(treatments), nil
}

// Create adds a new treatment to the catalog.
func (s *Service) Create(ctx context.Context, req *models.CreateTreatmentRequest) (*models.TreatmentResponse, error) {
	s.logger.Info("Create: creating treatment name=%s", req.Name)

	if err := validateAttributes(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.treatmentRepo.Create(ctx, &domain.Treatment{
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created treatment id=%d", created.ID)
	return models.FromDomainTreatment(created), nil
}

// Update replaces the treatment's attributes. Existing appointments keep
// their denormalized copy of the old name and price.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTreatmentRequest) (*models.TreatmentResponse, error) {
	s.logger.Info("Update: updating treatment id=%d", id)

	if err := validateAttributes(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed for treatment id=%d: %v", id, err)
		return nil, err
	}

	t := &domain.Treatment{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}

	if err := s.treatmentRepo.Update(ctx, t); err != nil {
		if errors.Is(err, treatmentRepo.ErrTreatmentNotFound) {
			s.logger.Warn("Update: treatment id=%d not found", id)
			return nil, ErrTreatmentNotFound
		}
		s.logger.Error("Update: repository error for treatment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.treatmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload treatment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload treatment: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated treatment id=%d", id)
	return models.FromDomainTreatment(updated), nil
}

// Delete removes a treatment from the catalog.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting treatment id=%d", id)

	if err := s.treatmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, treatmentRepo.ErrTreatmentNotFound) {
			s.logger.Warn("Delete: treatment id=%d not found", id)
			return ErrTreatmentNotFound
		}
		s.logger.Error("Delete: repository error for treatment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted treatment id=%d", id)
	return nil
}

func validateAttributes(name string, price float64, durationMinutes int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxTreatmentNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxTreatmentNameLength)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
