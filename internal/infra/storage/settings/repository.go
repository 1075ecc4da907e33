package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/glowtress/booking-service/internal/domain"
	"github.com/glowtress/booking-service/pkg/dbmetrics"
	"github.com/glowtress/booking-service/pkg/psqlbuilder"
)

// Repository persists the single admin settings row. Business hours are
// stored as JSON but always unmarshalled into the typed domain.BusinessHours
// struct and validated before leaving this package, so no string-keyed map
// escapes into the rest of the code.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a settings repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the stored settings, or ErrSettingsNotFound when the admin has
// never saved any.
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_hours",
		"slot_interval_minutes",
		"min_booking_notice_minutes",
		"deposit_info",
		"notification_email",
		"notification_phone",
		"service_area",
		"updated_at",
	).
		From("admin_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	var hoursJSON []byte
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&hoursJSON,
		&s.SlotIntervalMinutes,
		&s.MinBookingNoticeMinutes,
		&s.DepositInfo,
		&s.NotificationEmail,
		&s.NotificationPhone,
		&s.ServiceArea,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(hoursJSON, &s.BusinessHours); err != nil {
		return nil, fmt.Errorf("%w: Get - decode business hours: %v", ErrInvalidSettings, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrInvalidSettings, err)
	}

	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

// Upsert stores the settings, replacing the existing row if present.
func (r *Repository) Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: Upsert - %v", ErrInvalidSettings, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursJSON, err := json.Marshal(s.BusinessHours)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode business hours: %v", ErrInvalidSettings, err)
	}

	query, args, err := psqlbuilder.Insert("admin_settings").
		Columns(
			"id",
			"business_hours",
			"slot_interval_minutes",
			"min_booking_notice_minutes",
			"deposit_info",
			"notification_email",
			"notification_phone",
			"service_area",
		).
		Values(
			1, // single-row table
			hoursJSON,
			s.SlotIntervalMinutes,
			s.MinBookingNoticeMinutes,
			s.DepositInfo,
			s.NotificationEmail,
			s.NotificationPhone,
			s.ServiceArea,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			business_hours = EXCLUDED.business_hours,
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			deposit_info = EXCLUDED.deposit_info,
			notification_email = EXCLUDED.notification_email,
			notification_phone = EXCLUDED.notification_phone,
			service_area = EXCLUDED.service_area,
			updated_at = NOW()
		RETURNING id, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time
	return s, nil
}
