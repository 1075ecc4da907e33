package create_booking

import (
	"time"

	"github.com/glowtress/booking-service/internal/domain"
	createBooking "github.com/glowtress/booking-service/internal/usecase/create_booking"
	"github.com/glowtress/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   int64   `json:"serviceId"`
	Date        string  `json:"date"`      // "2026-09-15"
	StartTime   string  `json:"startTime"` // "10:00"
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	Location    string  `json:"location"`
	HairInfo    *string `json:"hairInfo,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingRef      string  `json:"bookingRef"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Location        string  `json:"location"`
	Notes           *string `json:"notes,omitempty"`
	DepositInfo     string  `json:"depositInfo"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing the date and time.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceID:   r.ServiceID,
		Date:        date,
		StartTime:   startTime,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		Location:    r.Location,
		HairInfo:    r.HairInfo,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
// The public reference is the only identifier clients see.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingRef:      resp.PublicID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Location:        resp.Location,
		Notes:           resp.Notes,
		DepositInfo:     resp.DepositInfo,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
