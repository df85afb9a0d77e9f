package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	assert.NoError(t, err)

	from, to := DayBounds(time.Date(2026, 3, 13, 23, 59, 59, 0, loc))

	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), to)
}

func TestDayBounds_HalfOpen(t *testing.T) {
	from, to := DayBounds(time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC))

	// Midnight belongs to the day; next midnight does not.
	assert.False(t, from.After(from))
	assert.True(t, to.After(from))
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}

func TestMonthBounds(t *testing.T) {
	from, to := MonthBounds(time.Date(2026, 12, 25, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestParseDay(t *testing.T) {
	fallback := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), ParseDay("2026-01-05", fallback))
	assert.Equal(t, fallback, ParseDay("", fallback))
	assert.Equal(t, fallback, ParseDay("05/01/2026", fallback))
}
