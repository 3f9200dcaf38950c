package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD representation used for store keys
const DateLayout = "2006-01-02"

// FormatDate formats a time as a canonical date string
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a canonical YYYY-MM-DD date string
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// WeekStart returns the Monday of the week containing the given date
func WeekStart(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(d.Weekday()) - int(time.Monday)
	if d.Weekday() == time.Sunday {
		diff = 6
	}
	return d.AddDate(0, 0, -diff)
}

// DatesOfWeek returns the 7 consecutive dates starting at the given day
func DatesOfWeek(start time.Time) []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// timeOfDayMinutes converts an HH:MM string to minutes since midnight.
// Malformed input counts as midnight, matching the tolerant display path.
func timeOfDayMinutes(s string) int {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

// CalculateShiftDuration returns the duration in hours between two HH:MM
// times. An end time earlier than the start wraps past midnight (overnight
// shifts), so "22:00" to "06:00" is 8 hours.
func CalculateShiftDuration(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}
	diff := timeOfDayMinutes(end) - timeOfDayMinutes(start)
	if diff < 0 {
		diff += 24 * 60
	}
	return float64(diff) / 60
}
