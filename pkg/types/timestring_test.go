package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)

	ts, err = NewTimeStringFromString("00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	ts, err = NewTimeStringFromString("23:59")
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, input := range []string{"", "9", "24:00", "12:60", "banana", "12.30"} {
		_, err := NewTimeStringFromString(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestNewTimeString_FromTime(t *testing.T) {
	at := time.Date(2026, 9, 15, 7, 3, 45, 0, time.UTC)
	assert.Equal(t, TimeString("07:03"), NewTimeString(at))
}

func TestNewTimeStringFromMinutes_Wraps(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromMinutes(0))
	assert.Equal(t, TimeString("09:30"), NewTimeStringFromMinutes(570))
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromMinutes(MinutesPerDay))
	assert.Equal(t, TimeString("00:15"), NewTimeStringFromMinutes(MinutesPerDay+15))
	assert.Equal(t, TimeString("23:45"), NewTimeStringFromMinutes(-15))
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, TimeString("12:00"), TimeString("09:00").AddMinutes(180))
	assert.Equal(t, TimeString("09:30"), TimeString("09:00").AddMinutes(30))
	assert.Equal(t, TimeString("08:30"), TimeString("09:00").AddMinutes(-30))
}

func TestAddMinutes_WrapsPastMidnight(t *testing.T) {
	assert.Equal(t, TimeString("00:15"), TimeString("23:45").AddMinutes(30))
	assert.Equal(t, TimeString("00:00"), TimeString("23:00").AddMinutes(60))
	assert.Equal(t, TimeString("23:30"), TimeString("00:30").AddMinutes(-60))
}

func TestMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
}

func TestOrdering_MatchesLexicographic(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("nonsense").Value()
	assert.Error(t, err)
}
