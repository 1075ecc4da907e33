package models

import (
	"errors"
	"time"

	"github.com/glowtress/booking-service/internal/domain"
	"github.com/glowtress/booking-service/pkg/ptr"
)

// ErrInvalidStatus is returned for unknown status strings.
var ErrInvalidStatus = errors.New("invalid appointment status")

// ListAppointmentsRequest is the admin listing filter.
type ListAppointmentsRequest struct {
	Status          *string    `json:"status,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the domain filter.
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = ptr.Ptr(status)
	}
	return filter, nil
}

// ToDomainStatus parses a status string.
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// AppointmentResponse is the service-level appointment view.
type AppointmentResponse struct {
	ID                 int64      `json:"id"`
	PublicID           string     `json:"publicId"`
	ClientID           int64      `json:"clientId"`
	ServiceID          int64      `json:"serviceId"`
	Date               time.Time  `json:"date"`
	StartTime          string     `json:"startTime"`
	EndTime            string     `json:"endTime"`
	DurationMinutes    int        `json:"durationMinutes"`
	Status             string     `json:"status"`
	ServiceName        string     `json:"serviceName"`
	ServicePrice       float64    `json:"servicePrice"`
	Location           string     `json:"location"`
	Notes              *string    `json:"notes,omitempty"`
	DepositReceiptURL  *string    `json:"depositReceiptUrl,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// FromDomainAppointment converts a domain appointment.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID,
		PublicID:           a.PublicID.String(),
		ClientID:           a.ClientID,
		ServiceID:          a.ServiceID,
		Date:               a.Date,
		StartTime:          a.StartTime.String(),
		EndTime:            a.EndTime.String(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		ServicePrice:       a.ServicePrice,
		Location:           a.Location,
		Notes:              a.Notes,
		DepositReceiptURL:  a.DepositReceiptURL,
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// AppointmentListResponse wraps a listing.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointmentList converts a domain slice.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, len(appointments))
	for i, a := range appointments {
		out[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{Appointments: out, Total: len(out)}
}
