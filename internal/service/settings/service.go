// Package settings exposes the admin business configuration: weekly hours,
// slot interval, deposit contact and notification addresses.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowtress/booking-service/internal/domain"
	settingsRepo "github.com/glowtress/booking-service/internal/infra/storage/settings"
)

var (
	// ErrInvalidSettings is returned when an update fails validation.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)

// Repository is the persistence surface for settings.
type Repository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service manages the settings row.
type Service struct {
	repo   Repository
	logger Logger
}

// NewService wires the service.
func NewService(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get returns the stored settings, or the defaults when the admin has never
// saved any.
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: no saved settings, returning defaults")
			return domain.DefaultSettings(), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return stored, nil
}

// Update validates and stores new settings. Bad business hours are rejected
// here so the availability engine never sees them.
func (s *Service) Update(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	if err := settings.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	stored, err := s.repo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved (slot interval %d min)", stored.SlotIntervalMinutes)
	return stored, nil
}
