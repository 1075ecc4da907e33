package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glowtress/booking-service/internal/api/handlers"
	"github.com/glowtress/booking-service/internal/service/bookings"
)

const (
	msgMissingBookingRef = "booking reference is required"
	msgNotFound          = "booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingRef}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingRef := vars["bookingRef"]
	if bookingRef == "" {
		h.logger.Warn("GET /bookings/{ref} - Missing booking reference")
		handlers.RespondBadRequest(w, msgMissingBookingRef)
		return
	}

	appt, err := h.service.GetByPublicID(r.Context(), bookingRef)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAppointmentNotFound):
			h.logger.Warn("GET /bookings/{ref} - Booking not found: ref=%s", bookingRef)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{ref} - Invalid reference: ref=%s", bookingRef)
			handlers.RespondBadRequest(w, msgMissingBookingRef)

		default:
			h.logger.Error("GET /bookings/{ref} - Failed to get booking: ref=%s, error=%v", bookingRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{ref} - Booking retrieved: ref=%s", bookingRef)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(appt))
}
