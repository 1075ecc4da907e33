package get_available_slots

import (
	"time"

	"github.com/glowtress/booking-service/pkg/types"
)

// Request asks for the bookable slots of one service on one date.
type Request struct {
	ServiceID int64
	Date      time.Time // date only, no time component
}

// Response lists the offerable slots. Advisory only: the authoritative
// conflict check happens again when a booking is submitted.
type Response struct {
	Date            time.Time
	ServiceID       int64
	ServiceName     string
	DurationMinutes int
	Slots           []Slot
}

// Slot is a bookable start time with its derived end.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
