package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/glowtress/booking-service/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked (or requested) styling appointment.
type Appointment struct {
	ID        int64
	PublicID  uuid.UUID // client-facing reference, used in booking links
	ClientID  int64
	ServiceID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    AppointmentStatus

	// Denormalized service data so history survives catalog edits
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int

	Location          string // where the stylist travels to
	Notes             *string
	DepositReceiptURL *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time slot.
// Cancelled appointments free the slot; completed ones keep it (the day
// already happened).
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status change is allowed.
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// AppointmentsFilter describes the admin listing filter.
type AppointmentsFilter struct {
	Status          *AppointmentStatus // optional status filter
	StartDate       *time.Time         // optional period start
	EndDate         *time.Time         // optional period end
	IncludeInactive bool               // include cancelled appointments
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
