package get_booking

import (
	"context"

	"github.com/glowtress/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetByPublicID(ctx context.Context, publicID string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
