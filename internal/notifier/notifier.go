// Package notifier turns booking lifecycle events into outbound email and SMS
// sends. Notification failures are logged and swallowed: a booking must never
// fail because a provider was down.
package notifier

import (
	"context"
	"fmt"

	"github.com/glowtress/booking-service/internal/domain"
)

// EmailSender sends one templated email.
type EmailSender interface {
	Send(ctx context.Context, templateID string, templateParams map[string]string) error
}

// SMSSender sends one SMS.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// Logger is the logging surface the notifier needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Templates maps lifecycle events to provider template IDs.
type Templates struct {
	Received  string
	Confirmed string
	Reminder  string
}

// Notifier fans booking events out to the configured channels. A nil email or
// sms sender disables that channel.
type Notifier struct {
	email     EmailSender
	sms       SMSSender
	templates Templates
	logger    Logger
}

// New creates a notifier. Pass nil for disabled channels.
func New(email EmailSender, sms SMSSender, templates Templates, logger Logger) *Notifier {
	return &Notifier{
		email:     email,
		sms:       sms,
		templates: templates,
		logger:    logger,
	}
}

// BookingReceived notifies the client that their request was recorded and is
// awaiting approval.
func (n *Notifier) BookingReceived(ctx context.Context, appt *domain.Appointment, client *domain.Client) {
	n.sendEmail(ctx, n.templates.Received, appt, client)
	n.sendSMS(ctx, client, fmt.Sprintf(
		"Hi %s! We received your %s request for %s at %s. We'll confirm shortly.",
		client.Name, appt.ServiceName, appt.Date.Format(domain.DateFormat), appt.StartTime))
}

// BookingConfirmed notifies the client that the stylist approved the booking.
func (n *Notifier) BookingConfirmed(ctx context.Context, appt *domain.Appointment, client *domain.Client) {
	n.sendEmail(ctx, n.templates.Confirmed, appt, client)
	n.sendSMS(ctx, client, fmt.Sprintf(
		"Hi %s! Your %s appointment on %s at %s is confirmed. See you then!",
		client.Name, appt.ServiceName, appt.Date.Format(domain.DateFormat), appt.StartTime))
}

// Reminder notifies the client the day before a confirmed appointment.
func (n *Notifier) Reminder(ctx context.Context, appt *domain.Appointment, client *domain.Client) {
	n.sendEmail(ctx, n.templates.Reminder, appt, client)
	n.sendSMS(ctx, client, fmt.Sprintf(
		"Reminder: your %s appointment is tomorrow, %s at %s. Reply here with any questions!",
		appt.ServiceName, appt.Date.Format(domain.DateFormat), appt.StartTime))
}

func (n *Notifier) sendEmail(ctx context.Context, templateID string, appt *domain.Appointment, client *domain.Client) {
	if n.email == nil || templateID == "" || client.Email == "" {
		return
	}

	params := map[string]string{
		"client_name":  client.Name,
		"client_email": client.Email,
		"service_name": appt.ServiceName,
		"date":         appt.Date.Format(domain.DateFormat),
		"time":         appt.StartTime.String(),
		"booking_ref":  appt.PublicID.String(),
		"location":     appt.Location,
	}

	if err := n.email.Send(ctx, templateID, params); err != nil {
		n.logger.Error("Notifier: email send failed: appointment=%d template=%s: %v", appt.ID, templateID, err)
		return
	}
	n.logger.Info("Notifier: email sent: appointment=%d template=%s", appt.ID, templateID)
}

func (n *Notifier) sendSMS(ctx context.Context, client *domain.Client, body string) {
	if n.sms == nil || client.Phone == "" {
		return
	}

	if err := n.sms.Send(ctx, client.Phone, body); err != nil {
		n.logger.Error("Notifier: sms send failed: client=%d: %v", client.ID, err)
		return
	}
	n.logger.Info("Notifier: sms sent: client=%d", client.ID)
}
