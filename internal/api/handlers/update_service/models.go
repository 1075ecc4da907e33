package update_service

import (
	"time"

	"github.com/glowtress/booking-service/internal/domain"
)

// ServiceResponse HTTP model of a catalog entry.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	Active          bool    `json:"active"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromDomain converts a catalog entry into the HTTP response.
func FromDomain(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		ImageURL:        svc.ImageURL,
		Active:          svc.Active,
		CreatedAt:       svc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       svc.UpdatedAt.Format(time.RFC3339),
	}
}
