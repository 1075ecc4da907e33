package delete_blocked_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glowtress/booking-service/internal/api/handlers"
	blockedtimesService "github.com/glowtress/booking-service/internal/service/blockedtimes"
)

const (
	msgInvalidID = "invalid blocked time ID"
	msgNotFound  = "blocked time not found"
)

type Handler struct {
	service BlockedTimeService
	logger  Logger
}

func NewHandler(service BlockedTimeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/blocked-times/{blockedTimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockedTimeID, err := strconv.ParseInt(vars["blockedTimeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-times/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), blockedTimeID); err != nil {
		switch {
		case errors.Is(err, blockedtimesService.ErrBlockedTimeNotFound):
			h.logger.Warn("DELETE /admin/blocked-times/{id} - Not found: id=%d", blockedTimeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-times/{id} - Failed to delete: id=%d, error=%v",
				blockedTimeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-times/{id} - Blocked window deleted: id=%d", blockedTimeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
