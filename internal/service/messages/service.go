// Package messages handles the per-appointment message threads between the
// client and the stylist.
package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glowtress/booking-service/internal/domain"
	appointmentRepo "github.com/glowtress/booking-service/internal/infra/storage/appointment"
	messageRepo "github.com/glowtress/booking-service/internal/infra/storage/message"
)

var (
	// ErrAppointmentNotFound is returned when the thread's appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrMessageNotFound is returned when the message does not exist.
	ErrMessageNotFound = errors.New("message not found")

	// ErrInvalidInput is returned for malformed message fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)

// MessageRepository is the persistence surface for messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id int64) error
}

// AppointmentResolver maps a public booking reference to an appointment.
type AppointmentResolver interface {
	GetByPublicID(ctx context.Context, publicID string) (*domain.Appointment, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service exposes appointment message threads.
type Service struct {
	messages     MessageRepository
	appointments AppointmentResolver
	logger       Logger
}

// NewService wires the service.
func NewService(messages MessageRepository, appointments AppointmentResolver, logger Logger) *Service {
	return &Service{messages: messages, appointments: appointments, logger: logger}
}

// ListThread returns the thread of the appointment with the given public ref.
func (s *Service) ListThread(ctx context.Context, publicID string) ([]*domain.Message, error) {
	appt, err := s.resolve(ctx, publicID)
	if err != nil {
		return nil, err
	}

	thread, err := s.messages.ListByAppointment(ctx, appt.ID)
	if err != nil {
		s.logger.Error("ListThread: repository error for appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: ListThread - repository error: %v", ErrInternal, err)
	}
	return thread, nil
}

// Post appends a message to the appointment's thread.
func (s *Service) Post(ctx context.Context, publicID string, sender domain.MessageSender, body string) (*domain.Message, error) {
	if !domain.ValidSender(sender) {
		return nil, fmt.Errorf("%w: unknown sender %q", ErrInvalidInput, sender)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrInvalidInput)
	}
	if len(body) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	appt, err := s.resolve(ctx, publicID)
	if err != nil {
		return nil, err
	}

	msg, err := s.messages.Create(ctx, &domain.Message{
		AppointmentID: appt.ID,
		Sender:        sender,
		Body:          body,
	})
	if err != nil {
		s.logger.Error("Post: repository error for appointment id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: Post - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Post: message id=%d on appointment id=%d from %s", msg.ID, appt.ID, sender)
	return msg, nil
}

// MarkRead flags a message as read from the admin inbox.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if err := s.messages.MarkRead(ctx, id); err != nil {
		if errors.Is(err, messageRepo.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		s.logger.Error("MarkRead: repository error for message id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) resolve(ctx context.Context, publicID string) (*domain.Appointment, error) {
	appt, err := s.appointments.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("messages: appointment ref=%s not found", publicID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("messages: repository error for ref=%s: %v", publicID, err)
		return nil, fmt.Errorf("%w: resolve appointment: %v", ErrInternal, err)
	}
	return appt, nil
}
