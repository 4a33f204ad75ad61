package treatment

import "errors"

var (
	// ErrTreatmentNotFound is returned when the treatment does not exist.
	ErrTreatmentNotFound = errors.New("treatment.repository: treatment not found")

	// ErrBuildQuery is returned when the SQL query could not be built.
	ErrBuildQuery = errors.New("treatment.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query failed to execute.
	ErrExecQuery = errors.New("treatment.repository: failed to execute query")

	// ErrScanRow is returned when a result row could not be scanned.
	ErrScanRow = errors.New("treatment.repository: failed to scan row")
)
