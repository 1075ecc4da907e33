package get_available_slots

import (
	"context"
	"time"

	"github.com/glowtress/booking-service/internal/domain"
)

// AppointmentRepository is the read surface for existing appointments.
type AppointmentRepository interface {
	// GetByDate returns the non-cancelled appointments of a date.
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// BlockedTimeRepository is the read surface for blocked windows.
type BlockedTimeRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error)
}

// CatalogRepository resolves the requested service and its duration.
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SettingsRepository supplies business hours and slot interval.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// TimeProvider supplies the current time; swapped out in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
