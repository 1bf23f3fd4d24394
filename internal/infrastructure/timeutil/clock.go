// Package timeutil provides time-related utilities for testability.
package timeutil

import "time"

// Clock provides an abstraction over time.Now() for testability.
// Use RealClock in production and FixedClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a controllable time for testing.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a clock pinned to the given time.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// NewFixedClockAt creates a clock pinned to a YYYY-MM-DD date at midnight
// UTC. Panics on an invalid date (for use in tests only).
func NewFixedClockAt(date string) *FixedClock {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("invalid date string: " + err.Error())
	}
	return &FixedClock{current: t}
}

// Now returns the pinned time.
func (c *FixedClock) Now() time.Time {
	return c.current
}

// Set pins the clock to a specific time.
func (c *FixedClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the clock forward by the given duration.
func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*FixedClock)(nil)
)
