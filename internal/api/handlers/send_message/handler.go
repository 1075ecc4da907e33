package send_message

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/glowtress/booking-service/internal/api/handlers"
	"github.com/glowtress/booking-service/internal/domain"
	messagesService "github.com/glowtress/booking-service/internal/service/messages"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingBookingRef  = "booking reference is required"
	msgBookingNotFound    = "booking not found"
	msgInvalidMessage     = "invalid message"
)

// SendMessageRequest HTTP request model
type SendMessageRequest struct {
	Body string `json:"body"`
}

// MessageResponse HTTP model of the posted message.
type MessageResponse struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

type Handler struct {
	service MessageService
	sender  domain.MessageSender
	logger  Logger
}

// NewHandler builds a handler posting as the given sender. The public route
// posts as the client, the admin route as the admin.
func NewHandler(service MessageService, sender domain.MessageSender, logger Logger) *Handler {
	return &Handler{
		service: service,
		sender:  sender,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingRef}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingRef := vars["bookingRef"]
	if bookingRef == "" {
		h.logger.Warn("POST /bookings/{ref}/messages - Missing booking reference")
		handlers.RespondBadRequest(w, msgMissingBookingRef)
		return
	}

	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{ref}/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	message, err := h.service.Post(r.Context(), bookingRef, h.sender, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, messagesService.ErrAppointmentNotFound):
			h.logger.Warn("POST /bookings/{ref}/messages - Booking not found: ref=%s", bookingRef)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, messagesService.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{ref}/messages - Invalid message: ref=%s, error=%v", bookingRef, err)
			handlers.RespondBadRequest(w, msgInvalidMessage)

		default:
			h.logger.Error("POST /bookings/{ref}/messages - Failed to post message: ref=%s, error=%v",
				bookingRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{ref}/messages - Message posted: ref=%s, message_id=%d, sender=%s",
		bookingRef, message.ID, message.Sender)
	handlers.RespondJSON(w, http.StatusCreated, &MessageResponse{
		ID:        message.ID,
		Sender:    string(message.Sender),
		Body:      message.Body,
		Read:      message.Read,
		CreatedAt: message.CreatedAt.Format(time.RFC3339),
	})
}
