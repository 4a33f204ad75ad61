package reports

import (
	"context"
	"fmt"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/reports/models"
)

// defaultPeriodDays is the reporting window used when the request carries
// no bounds.
const defaultPeriodDays = 30

// Service aggregates treatment popularity and revenue for the admin
// reports screen. Canceled appointments are excluded by the storage query.
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates a new reports service instance.
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// TreatmentStats builds the per-treatment report for the requested period.
func (s *Service) TreatmentStats(ctx context.Context, req *models.TreatmentStatsRequest) (*models.TreatmentStatsResponse, error) {
	now := s.timeProvider.Now().UTC()

	to := now
	if req.To != nil {
		to = req.To.UTC()
	}
	from := to.AddDate(0, 0, -defaultPeriodDays)
	if req.From != nil {
		from = req.From.UTC()
	}

	if to.Before(from) {
		s.logger.Warn("TreatmentStats: period end before start")
		return nil, fmt.Errorf("%w: period end before start", ErrInvalidInput)
	}

	s.logger.Info("TreatmentStats: building report from=%s to=%s",
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	stats, err := s.appointmentRepo.TreatmentStats(ctx, from, to)
	if err != nil {
		s.logger.Error("TreatmentStats: repository error: %v", err)
		return nil, fmt.Errorf("%w: TreatmentStats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("TreatmentStats: report has %d rows", len(stats))
	return models.FromDomainStats(stats, from, to), nil
}
