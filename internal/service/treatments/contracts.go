package treatments

import (
	"context"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// TreatmentRepository is the treatment storage surface the service needs.
type TreatmentRepository interface {
	Create(ctx context.Context, t *domain.Treatment) (*domain.Treatment, error)
	GetByID(ctx context.Context, id int64) (*domain.Treatment, error)
	List(ctx context.Context) ([]*domain.Treatment, error)
	Update(ctx context.Context, t *domain.Treatment) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
