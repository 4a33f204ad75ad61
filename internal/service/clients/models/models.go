package models

import (
	"strings"
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// Request models

// ListClientsRequest filters the admin client listing.
type ListClientsRequest struct {
	Search *string `json:"search,omitempty"` // matches name or phone
	Limit  uint64  `json:"limit,omitempty"`
	Offset uint64  `json:"offset,omitempty"`
}

// ToDomainFilter converts the request into a storage filter.
func (r *ListClientsRequest) ToDomainFilter() domain.ClientsFilter {
	filter := domain.ClientsFilter{
		Limit:  r.Limit,
		Offset: r.Offset,
	}

	if r.Search != nil {
		if search := strings.TrimSpace(*r.Search); search != "" {
			filter.Search = &search
		}
	}

	return filter
}

// Response models

// ClientResponse is a customer record.
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse is the admin listing payload.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Conversion helpers

// FromDomainClient converts the domain model into a DTO.
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainClientList converts a slice of domain models into the DTO.
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}

	for _, c := range clients {
		if dto := FromDomainClient(c); dto != nil {
			resp.Clients = append(resp.Clients, *dto)
		}
	}

	return resp
}
