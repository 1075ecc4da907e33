package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowtress/booking-service/internal/availability"
	"github.com/glowtress/booking-service/internal/domain"
	catalogRepo "github.com/glowtress/booking-service/internal/infra/storage/catalog"
	settingsRepo "github.com/glowtress/booking-service/internal/infra/storage/settings"
	"github.com/glowtress/booking-service/pkg/types"
)

// UseCase computes the bookable slots for a service on a date.
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedRepo     BlockedTimeRepository
	catalogRepo     CatalogRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase wires the use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedRepo BlockedTimeRepository,
	catalog CatalogRepository,
	settings SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockedRepo:     blockedRepo,
		catalogRepo:     catalog,
		settingsRepo:    settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the availability query.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: service id=%d is not bookable", req.ServiceID)
		return nil, ErrServiceNotBookable
	}

	settings, err := uc.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	schedule := settings.BusinessHours.ScheduleFor(req.Date)
	if schedule.Closed {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, service), nil
	}

	// A fetch failure means availability cannot be computed; never fall
	// through to an empty list and pretend the day is free.
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	blocked, err := uc.blockedRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}

	offerable, err := availability.OfferableSlots(
		schedule.OpenHour,
		schedule.CloseHour,
		settings.SlotIntervalMinutes,
		service.DurationMinutes,
		appointmentIntervals(appointments),
		blockedIntervals(blocked),
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	// Same-day requests additionally respect the minimum booking notice.
	if isSameDay(req.Date, now) {
		minStart := types.NewTimeString(now).AddMinutes(settings.MinBookingNoticeMinutes)
		filtered := make([]types.TimeString, 0, len(offerable))
		for _, slot := range offerable {
			if !slot.IsBefore(minStart) {
				filtered = append(filtered, slot)
			}
		}
		offerable = filtered
	}

	slots := make([]Slot, len(offerable))
	for i, start := range offerable {
		slots[i] = Slot{
			StartTime: start,
			EndTime:   start.AddMinutes(service.DurationMinutes),
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) loadSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Info("GetAvailableSlots: no saved settings, using defaults")
			return domain.DefaultSettings(), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return settings, nil
}

func (uc *UseCase) emptyResponse(req *Request, service *domain.Service) *Response {
	return &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}
}

func appointmentIntervals(appointments []*domain.Appointment) []availability.Interval {
	intervals := make([]availability.Interval, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		intervals = append(intervals, availability.Interval{
			Start: appt.StartTime,
			End:   appt.EndTime,
		})
	}
	return intervals
}

func blockedIntervals(blocked []*domain.BlockedTime) []availability.Interval {
	intervals := make([]availability.Interval, 0, len(blocked))
	for _, bt := range blocked {
		intervals = append(intervals, availability.Interval{
			Start: bt.StartTime,
			End:   bt.EndTime,
		})
	}
	return intervals
}
