package domain

import "time"

// Client represents a person who has requested or booked an appointment.
type Client struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	HairInfo  *string // texture, length, colour history
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
