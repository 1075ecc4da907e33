package domain

import "time"

// Service represents a catalog entry: a hairstyling service the business
// offers, with the duration the availability engine works from.
type Service struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	ImageURL        *string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable returns true if the service can be offered to clients.
func (s *Service) IsBookable() bool {
	return s.Active && s.DurationMinutes > 0
}
