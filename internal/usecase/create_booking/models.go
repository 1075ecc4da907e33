package create_booking

import (
	"time"

	"github.com/glowtress/booking-service/pkg/types"
)

// Request is a booking request from the public site form.
type Request struct {
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString

	ClientName  string
	ClientEmail string
	ClientPhone string
	Location    string // address the stylist travels to
	HairInfo    *string
	Notes       *string
}

// Response describes the recorded booking request.
type Response struct {
	ID              int64
	PublicID        string
	ClientID        int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string
	ServiceName     string
	ServicePrice    float64
	Location        string
	Notes           *string
	DepositInfo     string // how to send the deposit, from settings
	CreatedAt       time.Time
}
