// Package clock provides the time source injected into services.
//
// Services never call time.Now directly: production code uses System,
// tests use Manual so that stored timestamps are deterministic.
package clock

import (
	"sync"
	"time"
)

// Clock supplies creation timestamps for stored records.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now returns the current wall-clock time in UTC.
func (System) Now() time.Time { return time.Now().UTC() }

// Manual is a stepped clock for tests. Each call to Now returns the
// current value and advances it by a fixed step, so a sequence of
// writes gets strictly increasing, reproducible timestamps.
type Manual struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewManual creates a Manual clock starting at start, advancing by
// step on every Now call.
func NewManual(start time.Time, step time.Duration) *Manual {
	return &Manual{now: start.UTC(), step: step}
}

// Now returns the current value and advances the clock by one step.
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Set repositions the clock; the next Now returns t.
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}
