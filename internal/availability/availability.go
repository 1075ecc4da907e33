// Package availability is the pure slot-arithmetic core of the service:
// candidate slot enumeration within business hours and interval conflict
// detection against existing appointments and blocked windows.
//
// Everything here is a pure function of its inputs. No I/O, no state, no
// clock: callers supply the day's data and interpret the result. The verdicts
// are advisory only; the authoritative conflict check runs again at write time
// inside the booking transaction (see usecase/create_booking).
package availability

import (
	"fmt"

	"github.com/glowtress/booking-service/pkg/types"
)

// Interval is a half-open [Start, End) time range on a single date. Used for
// both existing appointments and blocked windows.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether two intervals actually share time. Half-open
// semantics: an interval ending exactly when another starts does NOT overlap.
// This boundary rule is the one correctness property everything downstream
// depends on: a 10:00-10:30 appointment and a 10:30-11:00 one coexist.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}

// EnumerateSlots returns the ordered candidate start times between
// openHour:00 (inclusive) and closeHour:00 (exclusive), stepping by
// intervalMinutes. The closing hour itself is never offered as a start.
//
// No duration-aware trimming happens here; a candidate may still run past
// closing once a service duration is applied. OfferableSlots layers that
// check on top.
func EnumerateSlots(openHour, closeHour, intervalMinutes int) ([]types.TimeString, error) {
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return nil, fmt.Errorf("%w: open=%d close=%d", ErrInvalidHours, openHour, closeHour)
	}
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, intervalMinutes)
	}

	closeMinutes := closeHour * 60
	slots := make([]types.TimeString, 0, (closeMinutes-openHour*60)/intervalMinutes)
	for m := openHour * 60; m < closeMinutes; m += intervalMinutes {
		slots = append(slots, types.NewTimeStringFromMinutes(m))
	}
	return slots, nil
}

// IsAvailable reports whether the requested [start, end) interval is free of
// conflicts with every existing appointment and every blocked range.
func IsAvailable(start, end types.TimeString, appointments, blocked []Interval) bool {
	requested := Interval{Start: start, End: end}
	for _, appt := range appointments {
		if requested.Overlaps(appt) {
			return false
		}
	}
	for _, window := range blocked {
		if requested.Overlaps(window) {
			return false
		}
	}
	return true
}

// OfferableSlots is the end-to-end composition the booking flow uses:
// enumerate candidates, drop those whose service would run past closing,
// then keep only the ones free of conflicts.
//
// The closing check works on unwrapped minutes, so a duration that would
// cross midnight is rejected here rather than relying on AddMinutes wrap
// semantics. Appointments never legitimately span midnight.
func OfferableSlots(
	openHour, closeHour, intervalMinutes, durationMinutes int,
	appointments, blocked []Interval,
) ([]types.TimeString, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}

	candidates, err := EnumerateSlots(openHour, closeHour, intervalMinutes)
	if err != nil {
		return nil, err
	}

	closeMinutes := closeHour * 60
	offerable := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		endMinutes := slot.Minutes() + durationMinutes
		if endMinutes > closeMinutes || endMinutes >= types.MinutesPerDay {
			continue
		}
		end := types.NewTimeStringFromMinutes(endMinutes)
		if IsAvailable(slot, end, appointments, blocked) {
			offerable = append(offerable, slot)
		}
	}
	return offerable, nil
}
