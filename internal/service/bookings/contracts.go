package bookings

import (
	"context"
	"time"

	"github.com/glowtress/booking-service/internal/domain"
)

// AppointmentRepository is the persistence surface the service needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	ListConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// ClientRepository resolves clients for notifications and listings.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// Notifier announces approvals to the client. Best effort.
type Notifier interface {
	BookingConfirmed(ctx context.Context, appt *domain.Appointment, client *domain.Client)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
