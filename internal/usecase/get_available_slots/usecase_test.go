package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowtress/booking-service/internal/domain"
	catalogRepo "github.com/glowtress/booking-service/internal/infra/storage/catalog"
	settingsRepo "github.com/glowtress/booking-service/internal/infra/storage/settings"
	"github.com/glowtress/booking-service/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.err
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

type fakeSettingsRepo struct {
	settings *domain.Settings
	err      error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	return f.settings, f.err
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testService() *domain.Service {
	return &domain.Service{
		ID:              1,
		Name:            "Knotless Braids",
		DurationMinutes: 60,
		Active:          true,
	}
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(
	appointments *fakeAppointmentRepo,
	blocked *fakeBlockedRepo,
	catalog *fakeCatalogRepo,
	settings *fakeSettingsRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointments, blocked, catalog, settings, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecute_FreeDay(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockedRepo{},
		&fakeCatalogRepo{service: testService()},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		testDate().AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate()})
	require.NoError(t, err)

	// Default 9-17 hours, 30 min interval, 60 min service: starts 09:00
	// through 16:00.
	require.Len(t, resp.Slots, 15)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].EndTime)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[len(resp.Slots)-1].StartTime)
	assert.Equal(t, "Knotless Braids", resp.ServiceName)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_ExcludesBookedAndBlocked(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
		{StartTime: "13:00", EndTime: "14:00", Status: domain.StatusCancelled}, // ignored
	}
	blocked := []*domain.BlockedTime{
		{StartTime: "15:00", EndTime: "16:00"},
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		&fakeBlockedRepo{blocked: blocked},
		&fakeCatalogRepo{service: testService()},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		testDate().AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate()})
	require.NoError(t, err)

	starts := make([]types.TimeString, len(resp.Slots))
	for i, slot := range resp.Slots {
		starts[i] = slot.StartTime
	}

	assert.NotContains(t, starts, types.TimeString("09:30"), "overlaps 10:00 appointment")
	assert.NotContains(t, starts, types.TimeString("10:00"))
	assert.NotContains(t, starts, types.TimeString("10:30"))
	assert.Contains(t, starts, types.TimeString("09:00"), "touching boundary is free")
	assert.Contains(t, starts, types.TimeString("11:00"))
	assert.Contains(t, starts, types.TimeString("13:00"), "cancelled appointment does not block")
	assert.NotContains(t, starts, types.TimeString("14:30"), "overlaps blocked window")
	assert.NotContains(t, starts, types.TimeString("15:00"))
}

func TestExecute_ClosedDay(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.BusinessHours.Tuesday = domain.DaySchedule{Closed: true}

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockedRepo{},
		&fakeCatalogRepo{service: testService()},
		&fakeSettingsRepo{settings: settings},
		testDate().AddDate(0, 0, -1),
	)

	// 2026-09-15 is a Tuesday.
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate()})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SameDayNotice(t *testing.T) {
	// Asking at 10:00 with 120 minutes notice: nothing before 12:00.
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockedRepo{},
		&fakeCatalogRepo{service: testService()},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate()})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[0].StartTime)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockedRepo{},
		&fakeCatalogRepo{service: testService()},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		testDate().AddDate(0, 0, 1),
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockedRepo{},
		&fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		testDate().AddDate(0, 0, -1),
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 7, Date: testDate()})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	svc := testService()
	svc.Active = false

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockedRepo{},
		&fakeCatalogRepo{service: svc},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		testDate().AddDate(0, 0, -1),
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate()})
	assert.ErrorIs(t, err, ErrServiceNotBookable)
}

func TestExecute_AppointmentFetchFailure(t *testing.T) {
	// A failed read must not be treated as an empty day.
	uc := newTestUseCase(
		&fakeAppointmentRepo{err: errors.New("connection refused")},
		&fakeBlockedRepo{},
		&fakeCatalogRepo{service: testService()},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		testDate().AddDate(0, 0, -1),
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate()})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockedRepo{},
		&fakeCatalogRepo{service: testService()},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		testDate().AddDate(0, 0, -1),
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
