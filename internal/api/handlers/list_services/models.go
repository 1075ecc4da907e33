package list_services

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

// ServiceListResponse wraps the catalog listing.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainList converts the catalog entries into the HTTP response.
func FromDomainList(services []*domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, len(services))
	for i, svc := range services {
		out[i] = ServiceResponse{
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
	return &ServiceListResponse{Services: out, Total: len(out)}
}
