package clients

import (
	"context"
	"fmt"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/service/clients/models"
)

// Service exposes the customer base to the admin screen. Clients are never
// created here; they appear implicitly when a booking is made.
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService creates a new clients service instance.
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List fetches clients with optional name/phone search.
func (s *Service) List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error) {
	s.logger.Info("List: fetching clients, search=%v", req.Search)

	clients, err := s.clientRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}
