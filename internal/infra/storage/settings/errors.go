package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when no settings row has been saved yet.
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrBuildQuery is returned when the SQL builder fails.
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("settings.repository: failed to scan row")

	// ErrInvalidSettings is returned when a stored row fails validation.
	ErrInvalidSettings = errors.New("settings.repository: invalid stored settings")
)
