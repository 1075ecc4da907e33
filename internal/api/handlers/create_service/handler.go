package create_service

import (
	"errors"
	"net/http"

	"github.com/glowtress/booking-service/internal/api/handlers"
	catalogService "github.com/glowtress/booking-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFields      = "invalid service fields"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req catalogService.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	svc, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /admin/services - Invalid fields: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("POST /admin/services - Failed to create service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services - Service created: service_id=%d, name=%s", svc.ID, svc.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(svc))
}
