package update_settings

import (
	"errors"
	"net/http"

	"github.com/glowtress/booking-service/internal/api/handlers"
	settingsService "github.com/glowtress/booking-service/internal/service/settings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSettings    = "invalid settings"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	settings, err := h.service.Update(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidSettings):
			h.logger.Warn("PUT /admin/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, FromDomain(settings))
}
