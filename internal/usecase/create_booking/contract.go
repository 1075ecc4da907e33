package create_booking

import (
	"context"
	"time"

	"github.com/glowtress/booking-service/internal/domain"
)

// AppointmentRepository is the persistence surface of the booking write path.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetByDate locks the day's rows when called inside a transaction.
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// BlockedTimeRepository is the read surface for blocked windows.
type BlockedTimeRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error)
}

// CatalogRepository resolves the requested service.
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ClientRepository resolves the requesting client.
type ClientRepository interface {
	Upsert(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// SettingsRepository supplies business hours, slot interval and deposit info.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// TransactionManager runs the availability re-check and the insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier announces the accepted booking request. Best effort.
type Notifier interface {
	BookingReceived(ctx context.Context, appt *domain.Appointment, client *domain.Client)
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
