// Package reminder runs the scheduled next-day reminder job: every run finds
// tomorrow's confirmed appointments and sends each client an email and SMS.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/glowtress/booking-service/internal/domain"
)

const jobTimeout = 2 * time.Minute

// AppointmentRepository supplies tomorrow's confirmed appointments.
type AppointmentRepository interface {
	ListConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// ClientRepository resolves the clients to notify.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// Notifier delivers the reminder.
type Notifier interface {
	Reminder(ctx context.Context, appt *domain.Appointment, client *domain.Client)
}

// Logger is the logging surface the job needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Job owns the gocron scheduler running the reminder task.
type Job struct {
	scheduler    gocron.Scheduler
	appointments AppointmentRepository
	clients      ClientRepository
	notifier     Notifier
	logger       Logger
}

// New creates the job with the given cron expression (local time).
func New(
	cronExpr string,
	appointments AppointmentRepository,
	clients ClientRepository,
	notifier Notifier,
	logger Logger,
) (*Job, error) {
	j := &Job{
		appointments: appointments,
		clients:      clients,
		notifier:     notifier,
		logger:       logger,
	}

	scheduler, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("Reminder job panicked: job=%s id=%s panic=%v", jobName, jobID, recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("reminder: create scheduler: %w", err)
	}
	j.scheduler = scheduler

	_, err = scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(j.run),
		gocron.WithName("appointment_reminders"),
	)
	if err != nil {
		return nil, fmt.Errorf("reminder: register job %q: %w", cronExpr, err)
	}

	return j, nil
}

// Start begins executing on schedule.
func (j *Job) Start() {
	j.scheduler.Start()
	j.logger.Info("Reminder job started")
}

// Stop shuts the scheduler down, waiting for a running task to finish.
func (j *Job) Stop() error {
	return j.scheduler.Shutdown()
}

func (j *Job) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1)
	tomorrow = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())

	appointments, err := j.appointments.ListConfirmedByDate(ctx, tomorrow)
	if err != nil {
		j.logger.Error("Reminder: failed to list appointments for %s: %v",
			tomorrow.Format(domain.DateFormat), err)
		return
	}

	j.logger.Info("Reminder: %d confirmed appointments on %s",
		len(appointments), tomorrow.Format(domain.DateFormat))

	for _, appt := range appointments {
		client, err := j.clients.GetByID(ctx, appt.ClientID)
		if err != nil {
			j.logger.Error("Reminder: failed to load client id=%d for appointment id=%d: %v",
				appt.ClientID, appt.ID, err)
			continue
		}
		j.notifier.Reminder(ctx, appt, client)
	}
}
