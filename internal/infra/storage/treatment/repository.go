package treatment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/dbmetrics"
)

var psqlbuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var treatmentColumns = []string{
	"id",
	"name",
	"price",
	"duration_minutes",
	"created_at",
	"updated_at",
}

// Repository persists treatments in PostgreSQL.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a treatment repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a treatment and returns the stored row.
func (r *Repository) Create(ctx context.Context, t *domain.Treatment) (*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("treatments").
		Columns("name", "price", "duration_minutes").
		Values(t.Name, t.Price, t.DurationMinutes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return t, nil
}

// GetByID fetches one treatment.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(treatmentColumns...).
		From("treatments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTreatment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTreatmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan treatment: %v", ErrScanRow, err)
	}
	return t, nil
}

// GetByIDs fetches the treatments with the given ids, in id order.
// Missing ids are simply absent from the result; the caller decides
// whether that is an error.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Treatment, error) {
	if len(ids) == 0 {
		return []*domain.Treatment{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(treatmentColumns...).
		From("treatments").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTreatments(rows)
}

// List fetches all treatments in name order.
func (r *Repository) List(ctx context.Context) ([]*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(treatmentColumns...).
		From("treatments").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTreatments(rows)
}

// Update overwrites a treatment's mutable fields.
func (r *Repository) Update(ctx context.Context, t *domain.Treatment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("treatments").
		Set("name", t.Name).
		Set("price", t.Price).
		Set("duration_minutes", t.DurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTreatmentNotFound
	}
	return nil
}

// Delete removes a treatment. Past appointments keep their denormalized
// treatment summary, so history survives the delete.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("treatments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTreatmentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTreatment(row rowScanner) (*domain.Treatment, error) {
	var t domain.Treatment
	var createdAt, updatedAt sql.NullTime
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Price,
		&t.DurationMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return &t, nil
}

func scanTreatments(rows *sql.Rows) ([]*domain.Treatment, error) {
	treatments := make([]*domain.Treatment, 0)
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTreatments - scan treatment: %v", ErrScanRow, err)
		}
		treatments = append(treatments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTreatments - rows error: %v", ErrScanRow, err)
	}
	return treatments, nil
}
