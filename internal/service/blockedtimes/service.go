// Package blockedtimes manages manually blocked windows in the stylist's day.
package blockedtimes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowtress/booking-service/internal/domain"
	blockedtimeRepo "github.com/glowtress/booking-service/internal/infra/storage/blockedtime"
	"github.com/glowtress/booking-service/pkg/types"
)

var (
	// ErrBlockedTimeNotFound is returned when the blocked window does not exist.
	ErrBlockedTimeNotFound = errors.New("blocked time not found")

	// ErrInvalidInterval is returned for a window whose start is not before its end.
	ErrInvalidInterval = errors.New("invalid time interval")

	// ErrInvalidInput is returned for malformed fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)

// Repository is the persistence surface for blocked windows.
type Repository interface {
	Create(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error)
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service exposes blocked-window management.
type Service struct {
	repo   Repository
	logger Logger
}

// NewService wires the service.
func NewService(repo Repository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create blocks a window. Start must be strictly before end on the same date.
func (s *Service) Create(ctx context.Context, date time.Time, start, end types.TimeString, reason string) (*domain.BlockedTime, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, end)
	}

	bt, err := s.repo.Create(ctx, &domain.BlockedTime{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Reason:    reason,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blocked %s-%s on %s (id=%d)",
		start, end, date.Format(domain.DateFormat), bt.ID)
	return bt, nil
}

// ListByDate returns the blocked windows of a date.
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	blocked, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}
	return blocked, nil
}

// Delete removes a blocked window, making its slots offerable again.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedtimeRepo.ErrBlockedTimeNotFound) {
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("Delete: repository error for blocked time id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocked time id=%d removed", id)
	return nil
}
