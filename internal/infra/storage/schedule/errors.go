package schedule

import "errors"

var (
	// ErrDayNotFound is returned when the weekday has no schedule row.
	ErrDayNotFound = errors.New("schedule.repository: day schedule not found")

	// ErrBuildQuery is returned when the SQL query could not be built.
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query failed to execute.
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when a result row could not be scanned.
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
