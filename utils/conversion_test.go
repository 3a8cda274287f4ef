package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStart(t *testing.T) {
	day, err := DayStart("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), day)

	for _, bad := range []string{"", "2026-3-2", "03/02/2026", "2026-13-40", "tomorrow"} {
		_, err := DayStart(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, MinutesOfDay(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 570, MinutesOfDay(time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, 1439, MinutesOfDay(time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)))

	// Non-UTC times are read on the UTC clock.
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, 14*60, MinutesOfDay(time.Date(2026, 3, 2, 9, 0, 0, 0, est)))
}

func TestMinutesToClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{1020, "17:00"},
		{1439, "23:59"},
		{1440, "00:00"},  // wraps into the next day
		{1560, "02:00"},  // overnight segment end
		{-60, "23:00"},   // wraps backwards
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinutesToClock(tt.minutes), "minutes %d", tt.minutes)
	}
}

func TestClockToMinutes(t *testing.T) {
	for clock, want := range map[string]int{
		"00:00": 0,
		"09:00": 540,
		"9:30":  570,
		"23:59": 1439,
	} {
		got, err := ClockToMinutes(clock)
		require.NoError(t, err, "input %q", clock)
		assert.Equal(t, want, got, "input %q", clock)
	}

	for _, bad := range []string{"", "24:00", "12:60", "-1:00", "noon"} {
		_, err := ClockToMinutes(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 540, 779, 1439} {
		parsed, err := ClockToMinutes(MinutesToClock(minutes))
		require.NoError(t, err)
		assert.Equal(t, minutes, parsed)
	}
}
