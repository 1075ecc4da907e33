package list_clients

import (
	"time"

	"github.com/glowtress/booking-service/internal/domain"
)

// ClientResponse HTTP model of a client record.
type ClientResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	HairInfo  *string `json:"hairInfo,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ClientListResponse wraps the client listing.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// FromDomain converts one client record.
func FromDomain(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		HairInfo:  c.HairInfo,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList converts the listing.
func FromDomainList(clients []*domain.Client) *ClientListResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = FromDomain(c)
	}
	return &ClientListResponse{Clients: out, Total: len(out)}
}
