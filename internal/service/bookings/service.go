package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glowtress/booking-service/internal/domain"
	appointmentRepo "github.com/glowtress/booking-service/internal/infra/storage/appointment"
	"github.com/glowtress/booking-service/internal/service/bookings/models"
	"github.com/glowtress/booking-service/pkg/ptr"
)

// Service covers the appointment back office: lookups, the admin listing and
// the approve/complete/cancel lifecycle. Creation goes through
// usecase/create_booking because of its transactional conflict check.
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	notifier        Notifier
	logger          Logger
}

// NewService wires the service.
func NewService(appointments AppointmentRepository, clients ClientRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointments,
		clientRepo:      clients,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID fetches an appointment by internal ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainAppointment(appt), nil
}

// GetByPublicID fetches an appointment by its client-facing reference.
func (s *Service) GetByPublicID(ctx context.Context, publicID string) (*models.AppointmentResponse, error) {
	if strings.TrimSpace(publicID) == "" {
		return nil, fmt.Errorf("%w: publicID is required", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByPublicID: appointment ref=%s not found", publicID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByPublicID: repository error for ref=%s: %v", publicID, err)
		return nil, fmt.Errorf("%w: GetByPublicID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAppointment(appt), nil
}

// List returns appointments matching the admin filter.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus applies an admin lifecycle transition: pending->confirmed
// (approval, triggers the confirmation notification) or confirmed->completed.
// Cancellations go through Cancel so a reason is always recorded.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.AppointmentResponse, error) {
	next, err := models.ToDomainStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", status, id)
		return nil, ErrInvalidStatus
	}
	if next == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: use cancel with a reason", ErrInvalidTransition)
	}

	appt, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appt.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d",
			appt.Status, next, id)
		return nil, ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, next); err != nil {
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}
	appt.Status = next

	if next == domain.StatusConfirmed {
		s.notifyConfirmed(ctx, appt)
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, next)
	return models.FromDomainAppointment(appt), nil
}

// Cancel cancels a pending or confirmed appointment, freeing its slot.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*models.AppointmentResponse, error) {
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appt, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status %s cannot be cancelled", id, appt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCancelled
	appt.CancellationReason = ptr.Ptr(reason)

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return models.FromDomainAppointment(appt), nil
}

func (s *Service) fetch(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return appt, nil
}

func (s *Service) notifyConfirmed(ctx context.Context, appt *domain.Appointment) {
	client, err := s.clientRepo.GetByID(ctx, appt.ClientID)
	if err != nil {
		s.logger.Error("notifyConfirmed: failed to load client id=%d: %v", appt.ClientID, err)
		return
	}
	s.notifier.BookingConfirmed(ctx, appt, client)
}
