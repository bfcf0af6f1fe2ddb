package engine

import (
	"time"

	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
)

// Clock counts fixed simulation ticks
// Game time only advances through Advance, so pausing is the absence of calls
type Clock struct {
	tick   uint64
	paused bool
}

// NewClock creates a clock at tick 0
func NewClock() *Clock {
	return &Clock{}
}

// Tick returns the number of completed ticks
func (c *Clock) Tick() uint64 {
	return c.tick
}

// Advance moves the clock forward one tick unless paused
// Returns false when paused
func (c *Clock) Advance() bool {
	if c.paused {
		return false
	}
	c.tick++
	return true
}

// Elapsed returns simulated time since start
func (c *Clock) Elapsed() time.Duration {
	return time.Duration(c.tick) * parameter.TickInterval
}

// Paused reports whether the clock is frozen
func (c *Clock) Paused() bool {
	return c.paused
}

// SetPaused freezes or resumes the clock
func (c *Clock) SetPaused(p bool) {
	c.paused = p
}

// TicksFor converts a duration to a whole number of ticks, rounding up, minimum 1
func TicksFor(d time.Duration) uint64 {
	if d <= 0 {
		return 1
	}
	n := uint64((d + parameter.TickInterval - 1) / parameter.TickInterval)
	if n == 0 {
		n = 1
	}
	return n
}
