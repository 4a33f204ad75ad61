package client

import "errors"

var (
	// ErrClientNotFound is returned when the client does not exist.
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrBuildQuery is returned when the SQL query could not be built.
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query failed to execute.
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow is returned when a result row could not be scanned.
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
