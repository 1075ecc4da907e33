package domain

import "time"

// MessageSender identifies which side of an appointment thread wrote a message.
type MessageSender string

const (
	SenderClient MessageSender = "client"
	SenderAdmin  MessageSender = "admin"
)

// Message is a single entry in an appointment's message thread.
type Message struct {
	ID            int64
	AppointmentID int64
	Sender        MessageSender
	Body          string
	Read          bool
	CreatedAt     time.Time
}

// ValidSender reports whether s is a known message sender.
func ValidSender(s MessageSender) bool {
	return s == SenderClient || s == SenderAdmin
}
