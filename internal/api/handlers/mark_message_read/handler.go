package mark_message_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glowtress/booking-service/internal/api/handlers"
	messagesService "github.com/glowtress/booking-service/internal/service/messages"
)

const (
	msgInvalidMessageID = "invalid message ID"
	msgNotFound         = "message not found"
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

// Handle PATCH /api/v1/admin/messages/{messageId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messageID, err := strconv.ParseInt(vars["messageId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/messages/{id}/read - Invalid message ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	if err := h.service.MarkRead(r.Context(), messageID); err != nil {
		switch {
		case errors.Is(err, messagesService.ErrMessageNotFound):
			h.logger.Warn("PATCH /admin/messages/{id}/read - Message not found: message_id=%d", messageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/messages/{id}/read - Failed to mark read: message_id=%d, error=%v",
				messageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/messages/{id}/read - Message marked read: message_id=%d", messageID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
