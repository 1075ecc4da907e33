package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayScheduleValidate(t *testing.T) {
	assert.NoError(t, DaySchedule{OpenHour: 9, CloseHour: 17}.Validate())
	assert.NoError(t, DaySchedule{OpenHour: 0, CloseHour: 24}.Validate())
	assert.NoError(t, DaySchedule{Closed: true, OpenHour: 17, CloseHour: 9}.Validate())

	assert.Error(t, DaySchedule{OpenHour: 17, CloseHour: 9}.Validate())
	assert.Error(t, DaySchedule{OpenHour: 9, CloseHour: 9}.Validate())
	assert.Error(t, DaySchedule{OpenHour: -1, CloseHour: 17}.Validate())
	assert.Error(t, DaySchedule{OpenHour: 9, CloseHour: 25}.Validate())
}

func TestScheduleFor(t *testing.T) {
	hours := DefaultBusinessHours()
	hours.Tuesday = DaySchedule{Closed: true}
	hours.Saturday = DaySchedule{OpenHour: 10, CloseHour: 14}

	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, tuesday.Weekday())
	assert.True(t, hours.ScheduleFor(tuesday).Closed)

	saturday := tuesday.AddDate(0, 0, 4)
	require.Equal(t, time.Saturday, saturday.Weekday())
	assert.Equal(t, DaySchedule{OpenHour: 10, CloseHour: 14}, hours.ScheduleFor(saturday))

	monday := tuesday.AddDate(0, 0, -1)
	assert.Equal(t, DaySchedule{OpenHour: DefaultOpenHour, CloseHour: DefaultCloseHour}, hours.ScheduleFor(monday))
}

func TestSettingsValidate(t *testing.T) {
	settings := DefaultSettings()
	assert.NoError(t, settings.Validate())

	settings.SlotIntervalMinutes = 0
	assert.Error(t, settings.Validate())

	settings = DefaultSettings()
	settings.MinBookingNoticeMinutes = -1
	assert.Error(t, settings.Validate())

	settings = DefaultSettings()
	settings.BusinessHours.Friday = DaySchedule{OpenHour: 20, CloseHour: 8}
	assert.Error(t, settings.Validate())
}
