package schedule_test

import (
	"testing"
	"time"

	"staff-scheduler-backend/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateShiftDuration(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		end      string
		expected float64
	}{
		{name: "Standard day shift", start: "09:00", end: "17:00", expected: 8.0},
		{name: "Overnight wraparound", start: "22:00", end: "06:00", expected: 8.0},
		{name: "Partial hours", start: "09:30", end: "17:45", expected: 8.25},
		{name: "Almost full day overnight", start: "10:00", end: "09:00", expected: 23.0},
		{name: "Empty start", start: "", end: "17:00", expected: 0},
		{name: "Empty end", start: "09:00", end: "", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, schedule.CalculateShiftDuration(tc.start, tc.end), 1e-9)
		})
	}
}

func TestWeekStartIsMonday(t *testing.T) {
	testCases := []struct {
		name     string
		date     string
		expected string
	}{
		{name: "Wednesday maps back", date: "2024-06-05", expected: "2024-06-03"},
		{name: "Monday is itself", date: "2024-06-03", expected: "2024-06-03"},
		{name: "Sunday maps back six days", date: "2024-06-09", expected: "2024-06-03"},
		{name: "Saturday", date: "2024-06-08", expected: "2024-06-03"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := schedule.ParseDate(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, schedule.FormatDate(schedule.WeekStart(d)))
		})
	}
}

func TestDatesOfWeekReturnsSevenConsecutiveDates(t *testing.T) {
	start, err := schedule.ParseDate("2024-06-03")
	require.NoError(t, err)

	dates := schedule.DatesOfWeek(start)

	require.Len(t, dates, 7)
	for i, d := range dates {
		assert.Equal(t, start.AddDate(0, 0, i), d)
	}
	assert.Equal(t, "2024-06-09", schedule.FormatDate(dates[6]))
}

func TestFormatAndParseDateRoundTrip(t *testing.T) {
	d := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-03", schedule.FormatDate(d))

	parsed, err := schedule.ParseDate("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = schedule.ParseDate("03/06/2024")
	assert.Error(t, err)
}
