package get_booking

import (
	"time"

	"github.com/glowtress/booking-service/internal/domain"
	"github.com/glowtress/booking-service/internal/service/bookings/models"
)

// PublicBookingResponse is the client-facing view of an appointment. Internal
// row IDs stay private, the booking reference is the only identifier.
type PublicBookingResponse struct {
	BookingRef      string  `json:"bookingRef"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Location        string  `json:"location"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromServiceResponse trims the service view down to the public fields.
func FromServiceResponse(appt *models.AppointmentResponse) *PublicBookingResponse {
	return &PublicBookingResponse{
		BookingRef:      appt.PublicID,
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime,
		EndTime:         appt.EndTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          appt.Status,
		Location:        appt.Location,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
	}
}
