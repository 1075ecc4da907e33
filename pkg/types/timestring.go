package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// MinutesPerDay is the number of minutes on a wall clock day.
const MinutesPerDay = 24 * 60

// TimeString is a wall-clock time of day in canonical "HH:MM" form.
//
// The representation is always zero-padded, so lexicographic comparison of two
// TimeString values agrees with numeric time ordering. Construct values through
// NewTimeString / NewTimeStringFromString; the zero value "" is not valid.
type TimeString string

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight,
// wrapping modulo 24h. Negative values wrap backwards.
func NewTimeStringFromMinutes(minutes int) TimeString {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return "", fmt.Errorf("invalid time string %q: expected HH:MM: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid time string %q: out of range", s)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// String returns the canonical "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() int {
	var hour, minute int
	fmt.Sscanf(string(t), "%02d:%02d", &hour, &minute)
	return hour*60 + minute
}

// AddMinutes returns the time shifted by the given number of minutes, wrapping
// past midnight modulo 24h. The wrap is well defined but callers dealing with
// same-day intervals must reject results that cross midnight before relying
// on it; see availability.OfferableSlots.
func (t TimeString) AddMinutes(minutes int) TimeString {
	return NewTimeStringFromMinutes(t.Minutes() + minutes)
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// Scan implements sql.Scanner. Postgres TIME columns arrive either as
// "HH:MM:SS" strings or as time.Time depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5] // strip seconds from "HH:MM:SS"
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if _, err := NewTimeStringFromString(string(t)); err != nil {
		return nil, err
	}
	return string(t), nil
}
