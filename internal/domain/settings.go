package domain

import (
	"fmt"
	"time"

	"github.com/glowtress/booking-service/pkg/types"
)

// DaySchedule is the opening window for one weekday. Open/Close hold whole
// hours because slot enumeration works on hour bounds; Closed days have no
// bookable slots at all.
type DaySchedule struct {
	Closed    bool
	OpenHour  int
	CloseHour int
}

// Validate checks the invariants required by the slot enumerator:
// 0 <= OpenHour < CloseHour <= 24.
func (d DaySchedule) Validate() error {
	if d.Closed {
		return nil
	}
	if d.OpenHour < 0 || d.CloseHour > 24 || d.OpenHour >= d.CloseHour {
		return fmt.Errorf("invalid day schedule: open=%d close=%d", d.OpenHour, d.CloseHour)
	}
	return nil
}

// CloseTime returns the closing bound as a wall-clock time. A CloseHour of 24
// maps to "23:59" plus a minute of slack handled by minute arithmetic in the
// enumerator, so it is only used for logging.
func (d DaySchedule) CloseTime() types.TimeString {
	return types.NewTimeStringFromMinutes(d.CloseHour * 60 % types.MinutesPerDay)
}

// BusinessHours is the weekly opening schedule, one typed field per weekday
// rather than a string-keyed map, so bad settings fail at load time instead of
// producing empty slot lists.
type BusinessHours struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// DefaultBusinessHours returns the stock 9-17 schedule, open every day.
func DefaultBusinessHours() BusinessHours {
	day := DaySchedule{OpenHour: DefaultOpenHour, CloseHour: DefaultCloseHour}
	return BusinessHours{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

// ScheduleFor returns the schedule of the weekday the date falls on.
func (h BusinessHours) ScheduleFor(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	default:
		return h.Sunday
	}
}

// Validate checks every weekday schedule.
func (h BusinessHours) Validate() error {
	days := map[string]DaySchedule{
		"monday": h.Monday, "tuesday": h.Tuesday, "wednesday": h.Wednesday,
		"thursday": h.Thursday, "friday": h.Friday, "saturday": h.Saturday,
		"sunday": h.Sunday,
	}
	for name, day := range days {
		if err := day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Settings is the admin-editable business configuration.
type Settings struct {
	ID                      int64
	BusinessHours           BusinessHours
	SlotIntervalMinutes     int
	MinBookingNoticeMinutes int
	DepositInfo             string // peer-payment contact for deposits, shown to clients
	NotificationEmail       string
	NotificationPhone       string
	ServiceArea             string
	UpdatedAt               time.Time
}

// DefaultSettings returns the settings used before the admin saved any.
func DefaultSettings() *Settings {
	return &Settings{
		BusinessHours:           DefaultBusinessHours(),
		SlotIntervalMinutes:     DefaultSlotIntervalMinutes,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}

// Validate checks settings invariants.
func (s *Settings) Validate() error {
	if s.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("slot interval must be positive, got %d", s.SlotIntervalMinutes)
	}
	if s.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("minimum booking notice cannot be negative, got %d", s.MinBookingNoticeMinutes)
	}
	return s.BusinessHours.Validate()
}
