package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowtress/booking-service/pkg/types"
)

func interval(start, end string) Interval {
	return Interval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestEnumerateSlots_StandardDay(t *testing.T) {
	slots, err := EnumerateSlots(9, 17, 30)
	require.NoError(t, err)

	// 9:00 through 16:30, closing hour never offered as a start.
	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("17:00"))
}

func TestEnumerateSlots_Ordered(t *testing.T) {
	slots, err := EnumerateSlots(9, 17, 30)
	require.NoError(t, err)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]),
			"slots must be ascending: %s before %s", slots[i-1], slots[i])
	}
}

func TestEnumerateSlots_UnevenInterval(t *testing.T) {
	slots, err := EnumerateSlots(9, 17, 45)
	require.NoError(t, err)

	// 45 does not divide 480; the last candidate before 17:00 is 16:30.
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1])
}

func TestEnumerateSlots_InvalidBounds(t *testing.T) {
	_, err := EnumerateSlots(17, 9, 30)
	assert.ErrorIs(t, err, ErrInvalidHours)

	_, err = EnumerateSlots(-1, 17, 30)
	assert.ErrorIs(t, err, ErrInvalidHours)

	_, err = EnumerateSlots(9, 25, 30)
	assert.ErrorIs(t, err, ErrInvalidHours)

	_, err = EnumerateSlots(9, 17, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestOverlaps_HalfOpenBoundaries(t *testing.T) {
	// Touching intervals share no time.
	assert.False(t, interval("10:00", "10:30").Overlaps(interval("10:30", "11:00")))
	assert.False(t, interval("10:30", "11:00").Overlaps(interval("10:00", "10:30")))

	// A single shared minute is a conflict.
	assert.True(t, interval("10:00", "10:30").Overlaps(interval("10:29", "11:00")))

	// Partial and full containment.
	assert.True(t, interval("10:00", "10:30").Overlaps(interval("10:15", "10:45")))
	assert.True(t, interval("10:00", "12:00").Overlaps(interval("10:30", "11:00")))
	assert.True(t, interval("10:30", "11:00").Overlaps(interval("10:00", "12:00")))

	// Identical intervals.
	assert.True(t, interval("10:00", "10:30").Overlaps(interval("10:00", "10:30")))

	// Disjoint.
	assert.False(t, interval("09:00", "09:30").Overlaps(interval("14:00", "15:00")))
}

func TestIsAvailable_TouchingBoundary(t *testing.T) {
	appointments := []Interval{interval("10:00", "10:30")}

	ok := IsAvailable("10:30", "11:00", appointments, nil)
	assert.True(t, ok, "slot starting exactly at an appointment's end must be free")

	ok = IsAvailable("09:30", "10:00", appointments, nil)
	assert.True(t, ok, "slot ending exactly at an appointment's start must be free")
}

func TestIsAvailable_Conflict(t *testing.T) {
	appointments := []Interval{interval("10:00", "10:30")}

	assert.False(t, IsAvailable("10:15", "10:45", appointments, nil))
	assert.False(t, IsAvailable("09:45", "10:15", appointments, nil))
	assert.False(t, IsAvailable("10:00", "10:30", appointments, nil))
}

func TestIsAvailable_BlockedRange(t *testing.T) {
	blocked := []Interval{interval("12:00", "13:00")}

	assert.False(t, IsAvailable("12:30", "13:30", nil, blocked))
	assert.False(t, IsAvailable("11:30", "12:30", nil, blocked))
	assert.True(t, IsAvailable("13:00", "14:00", nil, blocked))
	assert.True(t, IsAvailable("11:00", "12:00", nil, blocked))
}

func TestIsAvailable_NoData(t *testing.T) {
	assert.True(t, IsAvailable("10:00", "10:30", nil, nil))
}

func TestOfferableSlots_FullDayFree(t *testing.T) {
	slots, err := OfferableSlots(9, 17, 30, 30, nil, nil)
	require.NoError(t, err)

	// Every candidate fits: a 30-minute service starting 16:30 ends exactly
	// at closing.
	assert.Len(t, slots, 16)
	assert.Contains(t, slots, types.TimeString("16:30"))
}

func TestOfferableSlots_DurationTrimsTail(t *testing.T) {
	// A 6 hour service must start by 11:00.
	slots, err := OfferableSlots(9, 17, 30, 360, nil, nil)
	require.NoError(t, err)

	require.Len(t, slots, 5)
	assert.Equal(t, types.TimeString("11:00"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("14:00"))
	assert.NotContains(t, slots, types.TimeString("11:30"))
}

func TestOfferableSlots_ExcludesConflicts(t *testing.T) {
	appointments := []Interval{interval("10:00", "11:00")}

	slots, err := OfferableSlots(9, 17, 30, 60, appointments, nil)
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("09:30"), "would overlap 10:00-11:00")
	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.NotContains(t, slots, types.TimeString("10:30"))
	assert.Contains(t, slots, types.TimeString("09:00"), "ends exactly at appointment start")
	assert.Contains(t, slots, types.TimeString("11:00"), "starts exactly at appointment end")
}

func TestOfferableSlots_ExcludesBlockedWindows(t *testing.T) {
	blocked := []Interval{interval("12:00", "13:00")}

	slots, err := OfferableSlots(9, 17, 30, 30, nil, blocked)
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("12:00"))
	assert.NotContains(t, slots, types.TimeString("12:30"))
	assert.Contains(t, slots, types.TimeString("11:30"))
	assert.Contains(t, slots, types.TimeString("13:00"))
}

func TestOfferableSlots_Idempotent(t *testing.T) {
	appointments := []Interval{interval("10:00", "10:30"), interval("14:00", "15:30")}
	blocked := []Interval{interval("12:00", "13:00")}

	first, err := OfferableSlots(9, 17, 30, 60, appointments, blocked)
	require.NoError(t, err)
	second, err := OfferableSlots(9, 17, 30, 60, appointments, blocked)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOfferableSlots_NeverCrossesMidnight(t *testing.T) {
	// Late hours: a slot whose end would reach 24:00 is never offered, so no
	// appointment can wrap past midnight.
	slots, err := OfferableSlots(20, 24, 30, 60, nil, nil)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("22:30"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("23:00"))
	assert.NotContains(t, slots, types.TimeString("23:30"))
}

func TestOfferableSlots_InvalidDuration(t *testing.T) {
	_, err := OfferableSlots(9, 17, 30, 0, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = OfferableSlots(9, 17, 30, -15, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
