package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/schedule/models"
)

// Service maintains the stored week schedule from the back office. Note
// that for business days the booking flow uses the fixed default grid; the
// stored hours only take effect for days outside it.
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService creates a new schedule service instance.
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetWeek fetches the stored schedule for all seven weekdays.
func (s *Service) GetWeek(ctx context.Context) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetWeek: fetching stored week schedule")

	week, err := s.scheduleRepo.GetWeek(ctx)
	if err != nil {
		s.logger.Error("GetWeek: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeek(week), nil
}

// UpdateDay replaces the stored open hours for one weekday.
func (s *Service) UpdateDay(ctx context.Context, req *models.UpdateDayRequest) (*models.DayScheduleResponse, error) {
	s.logger.Info("UpdateDay: updating day=%d with %d hours", req.Day, len(req.OpenHours))

	if req.Day < int(time.Sunday) || req.Day > int(time.Saturday) {
		s.logger.Warn("UpdateDay: day=%d out of range", req.Day)
		return nil, fmt.Errorf("%w: day must be between 0 (Sunday) and 6 (Saturday)", ErrInvalidInput)
	}

	sched, err := req.ToDomainDay()
	if err != nil {
		s.logger.Warn("UpdateDay: invalid hours for day=%d: %v", req.Day, err)
		return nil, fmt.Errorf("%w: invalid open hours: %v", ErrInvalidInput, err)
	}

	saved, err := s.scheduleRepo.UpsertDay(ctx, sched)
	if err != nil {
		s.logger.Error("UpdateDay: repository error for day=%d: %v", req.Day, err)
		return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDay: successfully updated day=%d", req.Day)
	return models.FromDomainDay(saved), nil
}
