package utils

import "time"

// DayBounds returns [start-of-day, start-of-next-day) for the day containing
// t, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// MonthBounds returns [start-of-month, start-of-next-month) for the month
// containing t, in t's location.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// ParseDay parses a YYYY-MM-DD query parameter, returning the fallback day
// when the parameter is empty or malformed.
func ParseDay(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	d, err := time.ParseInLocation("2006-01-02", s, fallback.Location())
	if err != nil {
		return fallback
	}
	return d
}
