package domain

// Default configuration values
const (
	DefaultOpenHour                = 9
	DefaultCloseHour               = 17
	DefaultSlotIntervalMinutes     = 30
	DefaultMinBookingNoticeMinutes = 120 // same-day requests need 2h notice
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 15
	MaxServiceDurationMinutes   = 480 // a full business day
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxMessageLength            = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses that free up the appointment's time slot.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that occupy a time slot.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// BlockingStatuses lists statuses guarded by the slot uniqueness index:
// a slot with a pending or confirmed appointment cannot be taken again.
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
