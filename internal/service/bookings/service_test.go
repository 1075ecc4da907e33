package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowtress/booking-service/internal/domain"
	appointmentRepo "github.com/glowtress/booking-service/internal/infra/storage/appointment"
	"github.com/glowtress/booking-service/internal/service/bookings/models"
	"github.com/glowtress/booking-service/pkg/ptr"
)

type fakeAppointmentRepo struct {
	byID          map[int64]*domain.Appointment
	listFilter    *domain.AppointmentsFilter
	updatedStatus domain.AppointmentStatus
	cancelled     bool
	cancelReason  string
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copy := *appt
	return &copy, nil
}

func (f *fakeAppointmentRepo) GetByPublicID(ctx context.Context, publicID string) (*domain.Appointment, error) {
	for _, appt := range f.byID {
		if appt.PublicID.String() == publicID {
			copy := *appt
			return &copy, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.listFilter = &filter
	out := make([]*domain.Appointment, 0, len(f.byID))
	for _, appt := range f.byID {
		out = append(out, appt)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	f.updatedStatus = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(ctx context.Context, id int64, reason string) error {
	f.cancelled = true
	f.cancelReason = reason
	return nil
}

type fakeClientRepo struct{}

func (fakeClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return &domain.Client{ID: id, Name: "Amara Osei", Email: "amara@example.com"}, nil
}

type recordingNotifier struct{ confirmed int }

func (n *recordingNotifier) BookingConfirmed(ctx context.Context, appt *domain.Appointment, client *domain.Client) {
	n.confirmed++
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:        1,
		PublicID:  uuid.New(),
		ClientID:  7,
		ServiceID: 3,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.StatusPending,
	}
}

func newTestService(appt *domain.Appointment) (*Service, *fakeAppointmentRepo, *recordingNotifier) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{appt.ID: appt}}
	notifier := &recordingNotifier{}
	svc := NewService(repo, fakeClientRepo{}, notifier, nopLogger{})
	return svc, repo, notifier
}

func TestUpdateStatus_Approve(t *testing.T) {
	appt := pendingAppointment()
	svc, repo, notifier := newTestService(appt)

	resp, err := svc.UpdateStatus(context.Background(), 1, "confirmed")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
	assert.Equal(t, 1, notifier.confirmed, "approval notifies the client")
}

func TestUpdateStatus_Complete(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusConfirmed
	svc, _, notifier := newTestService(appt)

	resp, err := svc.UpdateStatus(context.Background(), 1, "completed")
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	assert.Zero(t, notifier.confirmed)
}

func TestUpdateStatus_InvalidTransitions(t *testing.T) {
	appt := pendingAppointment()
	svc, _, _ := newTestService(appt)

	// pending cannot jump straight to completed.
	_, err := svc.UpdateStatus(context.Background(), 1, "completed")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Cancellation must go through Cancel.
	_, err = svc.UpdateStatus(context.Background(), 1, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(context.Background(), 1, "approved")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_TerminalStates(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusCompleted
	svc, _, _ := newTestService(appt)

	_, err := svc.UpdateStatus(context.Background(), 1, "confirmed")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _, _ := newTestService(pendingAppointment())

	_, err := svc.UpdateStatus(context.Background(), 99, "confirmed")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel(t *testing.T) {
	appt := pendingAppointment()
	svc, repo, _ := newTestService(appt)

	resp, err := svc.Cancel(context.Background(), 1, "client requested")
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "client requested", *resp.CancellationReason)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "client requested", repo.cancelReason)
}

func TestCancel_CompletedAppointment(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusCompleted
	svc, _, _ := newTestService(appt)

	_, err := svc.Cancel(context.Background(), 1, "too late")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusCancelled
	svc, _, _ := newTestService(appt)

	_, err := svc.Cancel(context.Background(), 1, "again")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestList_StatusFilter(t *testing.T) {
	appt := pendingAppointment()
	svc, repo, _ := newTestService(appt)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status:    ptr.Ptr("pending"),
		StartDate: ptr.Ptr(appt.Date),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.listFilter)
	require.NotNil(t, repo.listFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.listFilter.Status)
	require.NotNil(t, repo.listFilter.StartDate)
	assert.True(t, repo.listFilter.StartDate.Equal(appt.Date))
}

func TestList_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(pendingAppointment())

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("approved"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByPublicID(t *testing.T) {
	appt := pendingAppointment()
	svc, _, _ := newTestService(appt)

	resp, err := svc.GetByPublicID(context.Background(), appt.PublicID.String())
	require.NoError(t, err)
	assert.Equal(t, appt.PublicID.String(), resp.PublicID)

	_, err = svc.GetByPublicID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.GetByPublicID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
