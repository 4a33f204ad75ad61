package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/dbmetrics"
	"github.com/davidrm-dev/BarberShop-BookingService/pkg/types"
)

var psqlbuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repository persists the weekly schedule in PostgreSQL. One row per
// weekday, open hours as a text[] of canonical "HH:MM" strings.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeek fetches all configured day schedules keyed by weekday.
// Days without a row are absent from the map.
func (r *Repository) GetWeek(ctx context.Context) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "open_hours", "updated_at").
		From("schedules").
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make(domain.WeekSchedule)
	for rows.Next() {
		var dayOfWeek int
		var hours pq.StringArray
		var updatedAt sql.NullTime
		if err := rows.Scan(&dayOfWeek, &hours, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan day schedule: %v", ErrScanRow, err)
		}

		openHours := make([]types.TimeString, len(hours))
		for i, h := range hours {
			openHours[i] = types.TimeString(h)
		}

		day := time.Weekday(dayOfWeek)
		week[day] = domain.DaySchedule{
			Day:       day,
			OpenHours: openHours,
			UpdatedAt: updatedAt.Time,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// UpsertDay replaces the open hours of one weekday.
func (r *Repository) UpsertDay(ctx context.Context, sched domain.DaySchedule) (*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hours := make([]string, len(sched.OpenHours))
	for i, h := range sched.OpenHours {
		hours[i] = h.String()
	}

	query, args, err := psqlbuilder.Insert("schedules").
		Columns("day_of_week", "open_hours").
		Values(int(sched.Day), pq.Array(hours)).
		Suffix("ON CONFLICT (day_of_week) DO UPDATE SET open_hours = EXCLUDED.open_hours, updated_at = NOW()").
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDay - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertDay - execute upsert: %v", ErrExecQuery, err)
	}

	sched.UpdatedAt = updatedAt.Time
	return &sched, nil
}
