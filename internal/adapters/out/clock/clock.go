// Package clock provides ports.Clock implementations.
package clock

import "time"

// SystemClock reads the wall clock, optionally converted to a location.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock creates a SystemClock. A nil location keeps times in time.Local.
func NewSystemClock(location *time.Location) SystemClock {
	return SystemClock{location: location}
}

// Now returns the current time.
func (c SystemClock) Now() time.Time {
	now := time.Now()
	if c.location != nil {
		return now.In(c.location)
	}
	return now
}

// FixedClock always returns the same instant. Used for demos and tests.
type FixedClock struct {
	now time.Time
}

// NewFixedClock creates a clock frozen at now.
func NewFixedClock(now time.Time) FixedClock {
	return FixedClock{now: now}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.now
}
