package helpers

import (
	"time"
)

// DateFormat is the wire format for date-only values
const DateFormat = "2006-01-02"

// ParseDuration parses a duration string, falling back to a default on error
func ParseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// ParseDate parses a date-only string in YYYY-MM-DD form
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}

// FormatDate renders a date-only string in YYYY-MM-DD form
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Truncate to midnight UTC so date comparisons ignore time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
