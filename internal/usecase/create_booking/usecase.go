package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/glowtress/booking-service/internal/availability"
	"github.com/glowtress/booking-service/internal/domain"
	appointmentRepo "github.com/glowtress/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/glowtress/booking-service/internal/infra/storage/catalog"
	settingsRepo "github.com/glowtress/booking-service/internal/infra/storage/settings"
	"github.com/glowtress/booking-service/pkg/txmanager"
)

// UseCase records a booking request. The slot list shown to the client is a
// snapshot; the check that matters runs here, inside a serializable
// transaction, against the rows as they are at write time.
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedRepo     BlockedTimeRepository
	catalogRepo     CatalogRepository
	clientRepo      ClientRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase wires the use case.
func NewUseCase(
	appointments AppointmentRepository,
	blocked BlockedTimeRepository,
	catalog CatalogRepository,
	clients ClientRepository,
	settings SettingsRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointments,
		blockedRepo:     blocked,
		catalogRepo:     catalog,
		clientRepo:      clients,
		settingsRepo:    settings,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the booking write path.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s, email=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.ClientEmail)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsBookable() {
		uc.logger.Warn("CreateBooking: service id=%d is not bookable", req.ServiceID)
		return nil, ErrServiceNotBookable
	}

	settings, err := uc.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	schedule := settings.BusinessHours.ScheduleFor(req.Date)
	if schedule.Closed {
		uc.logger.Warn("CreateBooking: closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrClosedDate
	}

	if err := validateSlotGrid(req.StartTime, service.DurationMinutes, schedule, settings.SlotIntervalMinutes); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}
	if err := validateNotice(req.Date, req.StartTime, now, settings.MinBookingNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
		return nil, err
	}

	client, err := uc.clientRepo.Upsert(ctx, &domain.Client{
		Name:     req.ClientName,
		Email:    req.ClientEmail,
		Phone:    req.ClientPhone,
		Address:  req.Location,
		HairInfo: req.HairInfo,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to upsert client email=%s: %v", req.ClientEmail, err)
		return nil, fmt.Errorf("%w: failed to upsert client: %v", ErrInternal, err)
	}

	endTime := req.StartTime.AddMinutes(service.DurationMinutes)

	var result *domain.Appointment

	// The advisory availability shown earlier is not trusted here. The same
	// conflict check reruns against rows locked FOR UPDATE, and the slot
	// uniqueness index backs it up even if two transactions race past it.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		blocked, err := uc.blockedRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked times: %v", err)
			return fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
		}

		if !availability.IsAvailable(req.StartTime, endTime, toIntervals(appointments), blockedToIntervals(blocked)) {
			uc.logger.Warn("CreateBooking: slot %s-%s on %s no longer available",
				req.StartTime, endTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			PublicID:        uuid.New(),
			ClientID:        client.ID,
			ServiceID:       service.ID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			DurationMinutes: service.DurationMinutes,
			Location:        req.Location,
			Notes:           req.Notes,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot uniqueness index rejected %s on %s",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		// Losing the serializable race after every retry means a concurrent
		// booking took an overlapping window with a different start time, so
		// the unique index never fired. Same outcome for the client.
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serializable retries exhausted for %s on %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created appointment id=%d ref=%s", result.ID, result.PublicID)

	// Notification failures never undo a recorded booking.
	uc.notifier.BookingReceived(ctx, result, client)

	return &Response{
		ID:              result.ID,
		PublicID:        result.PublicID.String(),
		ClientID:        result.ClientID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Location:        result.Location,
		Notes:           result.Notes,
		DepositInfo:     settings.DepositInfo,
		CreatedAt:       result.CreatedAt,
	}, nil
}

func (uc *UseCase) loadSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Info("CreateBooking: no saved settings, using defaults")
			return domain.DefaultSettings(), nil
		}
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return settings, nil
}

func toIntervals(appointments []*domain.Appointment) []availability.Interval {
	intervals := make([]availability.Interval, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		intervals = append(intervals, availability.Interval{Start: appt.StartTime, End: appt.EndTime})
	}
	return intervals
}

func blockedToIntervals(blocked []*domain.BlockedTime) []availability.Interval {
	intervals := make([]availability.Interval, 0, len(blocked))
	for _, bt := range blocked {
		intervals = append(intervals, availability.Interval{Start: bt.StartTime, End: bt.EndTime})
	}
	return intervals
}
