package domain

import "time"

// Client is a customer known to the barbershop. Clients are created
// implicitly on their first booking and deduplicated by phone number.
type Client struct {
	ID        int64
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientsFilter narrows admin client listings.
type ClientsFilter struct {
	Search *string // matches name or phone, optional
	Limit  uint64  // 0 = no limit
	Offset uint64
}
