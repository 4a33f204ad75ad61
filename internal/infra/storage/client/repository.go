package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/dbmetrics"
)

var psqlbuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repository persists barbershop clients in PostgreSQL.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a client repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByPhone creates the client or, when the phone number is already
// known, refreshes the stored name. Booking is the only write path for
// clients, so the newest name the customer typed wins.
func (r *Repository) UpsertByPhone(ctx context.Context, name, phone string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("name", "phone").
		Values(name, phone).
		Suffix("ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()").
		Suffix("RETURNING id, name, phone, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - build upsert query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - execute upsert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return &c, nil
}

// GetByID fetches one client.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone", "created_at", "updated_at").
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return &c, nil
}

// ListWithFilter fetches clients matching the filter, newest first.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ClientsFilter) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "phone", "created_at", "updated_at").
		From("clients").
		OrderBy("created_at DESC")

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan client: %v", ErrScanRow, err)
		}
		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time
		clients = append(clients, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}
	return clients, nil
}
