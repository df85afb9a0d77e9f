package models

import (
	"time"
)

// Clock provides the current time. Usecases take a Clock so that
// started_at/ended_at/received_at are deterministic in tests. Day and month
// windows are computed in process-local time, matching how the cash drawer
// is actually counted.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by the system time.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock pinned to a single instant, for tests.
type FixedClock struct {
	T time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.T
}
