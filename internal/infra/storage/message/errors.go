package message

import "errors"

var (
	// ErrMessageNotFound is returned when the message does not exist.
	ErrMessageNotFound = errors.New("message.repository: message not found")

	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("message.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("message.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("message.repository: failed to scan row")
)
