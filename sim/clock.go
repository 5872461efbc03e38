package sim

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock tracks elapsed simulation time with pause spans excluded.
// Pausing freezes Elapsed; resuming continues from the frozen value with
// no catch-up, matching the facade's frame-drop pause semantics
type Clock struct {
	mu sync.RWMutex

	start       time.Time
	pauseStart  time.Time     // When current pause began (real time)
	totalPaused time.Duration // Cumulative pause duration

	paused atomic.Bool
}

// NewClock creates a running clock anchored at now
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Elapsed returns simulation time: real time since creation minus every
// paused span, including the one in progress
func (c *Clock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.paused.Load() {
		return c.pauseStart.Sub(c.start) - c.totalPaused
	}
	return time.Since(c.start) - c.totalPaused
}

// Pause stops simulation time advancement
func (c *Clock) Pause() {
	if c.paused.CompareAndSwap(false, true) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.pauseStart = time.Now()
	}
}

// Resume continues simulation time advancement
func (c *Clock) Resume() {
	if c.paused.CompareAndSwap(true, false) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if !c.pauseStart.IsZero() {
			c.totalPaused += time.Since(c.pauseStart)
			c.pauseStart = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (c *Clock) IsPaused() bool {
	return c.paused.Load()
}

// TotalPaused returns cumulative pause time, including the current pause
func (c *Clock) TotalPaused() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.totalPaused
	if c.paused.Load() && !c.pauseStart.IsZero() {
		total += time.Since(c.pauseStart)
	}
	return total
}
