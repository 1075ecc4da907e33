package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glowtress/booking-service/internal/domain"
	catalogRepo "github.com/glowtress/booking-service/internal/infra/storage/catalog"
)

// Service manages the hairstyling catalog the booking flow offers.
type Service struct {
	repo   Repository
	logger Logger
}

// NewService wires the service.
func NewService(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateServiceRequest carries the editable catalog fields.
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	Active          bool    `json:"active"`
}

func (r *CreateServiceRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if r.DurationMinutes < domain.MinServiceDurationMinutes || r.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	return nil
}

// Create adds a catalog entry.
func (s *Service) Create(ctx context.Context, req *CreateServiceRequest) (*domain.Service, error) {
	if err := req.validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	svc, err := s.repo.Create(ctx, &domain.Service{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		Active:          req.Active,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%d (%s, %d min)", svc.ID, svc.Name, svc.DurationMinutes)
	return svc, nil
}

// Get fetches a catalog entry.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Get: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return svc, nil
}

// List returns catalog entries. The public site passes activeOnly=true.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	services, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// Update overwrites the editable fields of a catalog entry.
func (s *Service) Update(ctx context.Context, id int64, req *CreateServiceRequest) (*domain.Service, error) {
	if err := req.validate(); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	svc := &domain.Service{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		Active:          req.Active,
	}
	if err := s.repo.Update(ctx, svc); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service id=%d updated", id)
	return svc, nil
}

// Deactivate hides a catalog entry from the public site. Existing
// appointments keep their denormalized copy of the service data.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Deactivate: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: service id=%d deactivated", id)
	return nil
}
