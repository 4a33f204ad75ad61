package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/dbmetrics"
)

var psqlbuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var appointmentColumns = []string{
	"id",
	"code",
	"client_id",
	"scheduled_start",
	"duration_minutes",
	"status",
	"client_name",
	"client_phone",
	"treatment_summary",
	"total_price",
	"notes",
	"cancellation_reason",
	"canceled_at",
	"created_at",
	"updated_at",
}

// Repository persists appointments in PostgreSQL.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the appointment and its treatment links, returning the
// stored row. Callers that need the availability re-check to hold run this
// inside a serializable transaction; the executor is picked up from ctx.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"code",
			"client_id",
			"scheduled_start",
			"duration_minutes",
			"status",
			"client_name",
			"client_phone",
			"treatment_summary",
			"total_price",
			"notes",
		).
		Values(
			appt.Code,
			appt.ClientID,
			appt.ScheduledStart,
			appt.DurationMinutes,
			appt.Status,
			appt.ClientName,
			appt.ClientPhone,
			appt.TreatmentSummary,
			appt.TotalPrice,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	if len(appt.TreatmentIDs) > 0 {
		linkBuilder := psqlbuilder.Insert("appointment_treatments").
			Columns("appointment_id", "treatment_id")
		for _, treatmentID := range appt.TreatmentIDs {
			linkBuilder = linkBuilder.Values(appt.ID, treatmentID)
		}

		query, args, err = linkBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build treatment links query: %v", ErrBuildQuery, err)
		}
		if _, err = executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert treatment links: %v", ErrExecQuery, err)
		}
	}

	return appt, nil
}

// GetByID fetches one appointment, including its treatment ids.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByCode fetches one appointment by its public confirmation code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Appointment, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan appointment: %v", ErrScanRow, err)
	}

	if err := r.loadTreatmentIDs(ctx, executor, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// ListWithFilter fetches appointments matching the filter.
//
// Ordering: a single-day period is returned in start-time order (the
// availability and day-view path); anything else newest-first. Inside a
// transaction a single-day period locks the rows FOR UPDATE so the
// availability re-check in the booking flow holds until commit.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_start": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"scheduled_start": *filter.To})
	}
	if filter.ClientPhone != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_phone": *filter.ClientPhone})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCanceled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCanceled)})
	}

	singleDay := filter.From != nil && filter.To != nil &&
		filter.To.Sub(*filter.From) <= 24*time.Hour

	if singleDay {
		selectBuilder = selectBuilder.OrderBy("scheduled_start ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("scheduled_start DESC")
	}

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	if dbmetrics.IsInTransaction(ctx) && singleDay {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
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

	return scanAppointments(rows)
}

// UpdateStatus updates the appointment status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// Cancel marks the appointment canceled with a reason.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCanceled).
		Set("cancellation_reason", reason).
		Set("canceled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// TreatmentStats aggregates appointment count and revenue per treatment
// over a period, canceled appointments excluded.
func (r *Repository) TreatmentStats(ctx context.Context, from, to time.Time) ([]*domain.TreatmentStat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"t.id",
		"t.name",
		"COUNT(DISTINCT a.id) AS appointments",
		"COALESCE(SUM(t.price), 0) AS revenue",
	).
		From("appointments a").
		Join("appointment_treatments link ON link.appointment_id = a.id").
		Join("treatments t ON t.id = link.treatment_id").
		Where(squirrel.NotEq{"a.status": string(domain.StatusCanceled)}).
		Where(squirrel.GtOrEq{"a.scheduled_start": from}).
		Where(squirrel.Lt{"a.scheduled_start": to}).
		GroupBy("t.id", "t.name").
		OrderBy("appointments DESC, t.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: TreatmentStats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TreatmentStats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := make([]*domain.TreatmentStat, 0)
	for rows.Next() {
		var stat domain.TreatmentStat
		if err := rows.Scan(&stat.TreatmentID, &stat.Name, &stat.Appointments, &stat.Revenue); err != nil {
			return nil, fmt.Errorf("%w: TreatmentStats - scan stat: %v", ErrScanRow, err)
		}
		stats = append(stats, &stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TreatmentStats - rows error: %v", ErrScanRow, err)
	}
	return stats, nil
}

func (r *Repository) loadTreatmentIDs(ctx context.Context, executor DBExecutor, appt *domain.Appointment) error {
	query, args, err := psqlbuilder.Select("treatment_id").
		From("appointment_treatments").
		Where(squirrel.Eq{"appointment_id": appt.ID}).
		OrderBy("treatment_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadTreatmentIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadTreatmentIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("%w: loadTreatmentIDs - scan treatment_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadTreatmentIDs - rows error: %v", ErrScanRow, err)
	}

	appt.TreatmentIDs = ids
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt, canceledAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Code,
		&appt.ClientID,
		&appt.ScheduledStart,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.ClientName,
		&appt.ClientPhone,
		&appt.TreatmentSummary,
		&appt.TotalPrice,
		&appt.Notes,
		&appt.CancellationReason,
		&canceledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if canceledAt.Valid {
		appt.CanceledAt = &canceledAt.Time
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	// Instants are stored in UTC; keep them that way on the way out.
	appt.ScheduledStart = appt.ScheduledStart.UTC()

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}
	return appointments, nil
}
