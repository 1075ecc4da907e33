// Package clients is the admin-facing client directory.
package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowtress/booking-service/internal/domain"
	clientRepo "github.com/glowtress/booking-service/internal/infra/storage/client"
)

var (
	// ErrClientNotFound is returned when the client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)

// Repository is the persistence surface for clients.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service exposes the client directory.
type Service struct {
	repo   Repository
	logger Logger
}

// NewService wires the service.
func NewService(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get fetches one client.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Get: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Get: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return c, nil
}

// List returns every client ordered by name.
func (s *Service) List(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("List: fetched %d clients", len(clients))
	return clients, nil
}
