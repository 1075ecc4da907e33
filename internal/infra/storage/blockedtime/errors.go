package blockedtime

import "errors"

var (
	// ErrBlockedTimeNotFound is returned when the blocked window does not exist.
	ErrBlockedTimeNotFound = errors.New("blockedtime.repository: blocked time not found")

	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("blockedtime.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("blockedtime.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("blockedtime.repository: failed to scan row")
)
