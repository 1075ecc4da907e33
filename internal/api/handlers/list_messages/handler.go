package list_messages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glowtress/booking-service/internal/api/handlers"
	messagesService "github.com/glowtress/booking-service/internal/service/messages"
)

const (
	msgMissingBookingRef = "booking reference is required"
	msgBookingNotFound   = "booking not found"
)

type Handler struct {
	service MessageService
	logger  Logger
}

func NewHandler(service MessageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingRef}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingRef := vars["bookingRef"]
	if bookingRef == "" {
		h.logger.Warn("GET /bookings/{ref}/messages - Missing booking reference")
		handlers.RespondBadRequest(w, msgMissingBookingRef)
		return
	}

	messages, err := h.service.ListThread(r.Context(), bookingRef)
	if err != nil {
		switch {
		case errors.Is(err, messagesService.ErrAppointmentNotFound):
			h.logger.Warn("GET /bookings/{ref}/messages - Booking not found: ref=%s", bookingRef)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, messagesService.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{ref}/messages - Invalid reference: ref=%s", bookingRef)
			handlers.RespondBadRequest(w, msgMissingBookingRef)

		default:
			h.logger.Error("GET /bookings/{ref}/messages - Failed to list messages: ref=%s, error=%v",
				bookingRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{ref}/messages - Listed %d messages: ref=%s", len(messages), bookingRef)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(messages))
}
