package clients

import (
	"context"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// ClientRepository is the client storage surface the service needs.
type ClientRepository interface {
	ListWithFilter(ctx context.Context, filter domain.ClientsFilter) ([]*domain.Client, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
