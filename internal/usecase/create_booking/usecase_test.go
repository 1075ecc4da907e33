package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowtress/booking-service/internal/domain"
	appointmentRepo "github.com/glowtress/booking-service/internal/infra/storage/appointment"
	settingsRepo "github.com/glowtress/booking-service/internal/infra/storage/settings"
	"github.com/glowtress/booking-service/pkg/txmanager"
	"github.com/glowtress/booking-service/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	getErr       error
	createErr    error
	created      *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.getErr
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *appt
	out.ID = 42
	out.CreatedAt = time.Now()
	f.created = &out
	return &out, nil
}

type fakeBlockedRepo struct {
	blocked []*domain.BlockedTime
	err     error
}

func (f *fakeBlockedRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	return f.blocked, f.err
}

type fakeCatalogRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeClientRepo struct {
	upserted *domain.Client
}

func (f *fakeClientRepo) Upsert(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	out := *c
	out.ID = 7
	f.upserted = &out
	return &out, nil
}

type fakeSettingsRepo struct {
	settings *domain.Settings
	err      error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	return f.settings, f.err
}

// passthroughTxManager runs the function directly; transactional behavior is
// covered by the repository integration.
type passthroughTxManager struct{ calls int }

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// abortingTxManager reports that every serializable attempt lost to a
// concurrent writer.
type abortingTxManager struct{}

func (m *abortingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fmt.Errorf("%w: could not serialize access", txmanager.ErrSerializationFailure)
}

type recordingNotifier struct {
	received int
	last     *domain.Appointment
}

func (n *recordingNotifier) BookingReceived(ctx context.Context, appt *domain.Appointment, client *domain.Client) {
	n.received++
	n.last = appt
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointmentRepo
	tx           *passthroughTxManager
	notifier     *recordingNotifier
	clients      *fakeClientRepo
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func newFixture(appointments *fakeAppointmentRepo, blocked *fakeBlockedRepo, settings *fakeSettingsRepo) *fixture {
	service := &domain.Service{
		ID:              1,
		Name:            "Knotless Braids",
		Price:           180,
		DurationMinutes: 60,
		Active:          true,
	}

	tx := &passthroughTxManager{}
	notifier := &recordingNotifier{}
	clients := &fakeClientRepo{}

	uc := NewUseCase(
		appointments,
		blocked,
		&fakeCatalogRepo{service: service},
		clients,
		settings,
		tx,
		notifier,
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: testDate().AddDate(0, 0, -1)}

	return &fixture{uc: uc, appointments: appointments, tx: tx, notifier: notifier, clients: clients}
}

func validRequest() *Request {
	return &Request{
		ServiceID:   1,
		Date:        testDate(),
		StartTime:   "10:00",
		ClientName:  "Amara Osei",
		ClientEmail: "amara@example.com",
		ClientPhone: "+15551234567",
		Location:    "12 Rosewood Ave",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.NotEmpty(t, resp.PublicID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Knotless Braids", resp.ServiceName)
	assert.Equal(t, 180.0, resp.ServicePrice)

	assert.Equal(t, 1, f.tx.calls, "insert must run inside the transaction")
	assert.Equal(t, 1, f.notifier.received)
	require.NotNil(t, f.clients.upserted)
	assert.Equal(t, "amara@example.com", f.clients.upserted.Email)
}

func TestExecute_SlotConflict(t *testing.T) {
	existing := []*domain.Appointment{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
	}
	f := newFixture(&fakeAppointmentRepo{appointments: existing}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	req := validRequest()
	req.StartTime = "10:30"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.notifier.received, "no notification for a rejected booking")
}

func TestExecute_TouchingBoundaryAllowed(t *testing.T) {
	existing := []*domain.Appointment{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
	}
	f := newFixture(&fakeAppointmentRepo{appointments: existing}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	req := validRequest()
	req.StartTime = "11:00"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	// A concurrent insert that slipped past the read maps to the same
	// retriable error as an ordinary conflict.
	f := newFixture(&fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SerializableRaceLost(t *testing.T) {
	// An overlapping booking with a different start time never trips the
	// unique index; the loser aborts with a serialization failure instead.
	// After the retries run out the client sees the usual conflict error,
	// not an internal one.
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})
	f.uc.txManager = &abortingTxManager{}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.notifier.received)
}

func TestExecute_BlockedWindow(t *testing.T) {
	blocked := []*domain.BlockedTime{{StartTime: "12:00", EndTime: "13:00"}}
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{blocked: blocked}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	req := validRequest()
	req.StartTime = "12:30"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OffGridStart(t *testing.T) {
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	req := validRequest()
	req.StartTime = "10:15"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_RunsPastClosing(t *testing.T) {
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	req := validRequest()
	req.StartTime = "16:30" // 60 minute service would end 17:30

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	req := validRequest()
	req.StartTime = "08:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ClosedDate(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.BusinessHours.Tuesday = domain.DaySchedule{Closed: true}
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{}, &fakeSettingsRepo{settings: settings})

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClosedDate)
}

func TestExecute_TooLateToBook(t *testing.T) {
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})
	// Same day at 09:00 with the default 120 minute notice.
	f.uc.timeProvider = &fixedClock{now: time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)}

	req := validRequest()
	req.StartTime = "10:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})
	f.uc.timeProvider = &fixedClock{now: testDate().AddDate(0, 0, 3)}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MissingFields(t *testing.T) {
	f := newFixture(&fakeAppointmentRepo{}, &fakeBlockedRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

	req := validRequest()
	req.ClientEmail = ""

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Location = "  "

	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
