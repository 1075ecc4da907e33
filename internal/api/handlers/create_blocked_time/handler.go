package create_blocked_time

import (
	"errors"
	"net/http"
	"time"

	"github.com/glowtress/booking-service/internal/api/handlers"
	"github.com/glowtress/booking-service/internal/domain"
	blockedtimesService "github.com/glowtress/booking-service/internal/service/blockedtimes"
	"github.com/glowtress/booking-service/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgInvalidInterval    = "start time must be before end time"
)

// CreateBlockedTimeRequest HTTP request model
type CreateBlockedTimeRequest struct {
	Date      string `json:"date"`      // "2026-09-15"
	StartTime string `json:"startTime"` // "12:00"
	EndTime   string `json:"endTime"`   // "13:00"
	Reason    string `json:"reason"`
}

// BlockedTimeResponse HTTP model of the created window.
type BlockedTimeResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

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

// Handle POST /api/v1/admin/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-times - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-times - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-times - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	blocked, err := h.service.Create(r.Context(), date, start, end, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, blockedtimesService.ErrInvalidInterval):
			h.logger.Warn("POST /admin/blocked-times - Invalid interval: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, blockedtimesService.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/blocked-times - Failed to create blocked time: date=%s, error=%v",
				req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-times - Blocked window created: id=%d, date=%s, start=%s, end=%s",
		blocked.ID, req.Date, req.StartTime, req.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, &BlockedTimeResponse{
		ID:        blocked.ID,
		Date:      blocked.Date.Format(domain.DateFormat),
		StartTime: blocked.StartTime.String(),
		EndTime:   blocked.EndTime.String(),
		Reason:    blocked.Reason,
		CreatedAt: blocked.CreatedAt.Format(time.RFC3339),
	})
}
