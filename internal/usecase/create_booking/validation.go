package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/glowtress/booking-service/internal/domain"
	"github.com/glowtress/booking-service/pkg/types"
)

func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientEmail) == "" {
		return fmt.Errorf("%w: client email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// validateSlotGrid checks the requested start lies on the enumerable slot
// grid within business hours and that the service fits before closing
// without crossing midnight.
func validateSlotGrid(start types.TimeString, durationMinutes int, schedule domain.DaySchedule, intervalMinutes int) error {
	openMinutes := schedule.OpenHour * 60
	closeMinutes := schedule.CloseHour * 60
	startMinutes := start.Minutes()

	if startMinutes < openMinutes || startMinutes >= closeMinutes {
		return fmt.Errorf("%w: %s is outside business hours", ErrInvalidTimeSlot, start)
	}
	if (startMinutes-openMinutes)%intervalMinutes != 0 {
		return fmt.Errorf("%w: %s is not on the %d-minute grid", ErrInvalidTimeSlot, start, intervalMinutes)
	}

	endMinutes := startMinutes + durationMinutes
	if endMinutes > closeMinutes || endMinutes >= types.MinutesPerDay {
		return fmt.Errorf("%w: service would end past closing", ErrInvalidTimeSlot)
	}
	return nil
}

// validateNotice rejects same-day requests inside the minimum notice window.
func validateNotice(date time.Time, start types.TimeString, now time.Time, noticeMinutes int) error {
	if !isSameDay(date, now) {
		return nil
	}
	minStart := types.NewTimeString(now).AddMinutes(noticeMinutes)
	if start.IsBefore(minStart) {
		return ErrTooLateToBook
	}
	return nil
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
