package component

import (
	"time"

	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// Countdown is the session time limit
type Countdown struct {
	Remaining int     // Whole seconds
	Active    bool    // Counting down
	carry     float64 // Sub-second accumulator
}

// NewCountdown creates an active countdown of d, truncated to whole seconds
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{Remaining: int(d / time.Second), Active: true}
}

// Advance accumulates dt and decrements once per whole second
// Returns true on the tick the countdown reaches zero
func (c *Countdown) Advance(dt float64) bool {
	if !c.Active || c.Remaining <= 0 {
		return false
	}
	c.carry += dt
	for c.carry >= 1 && c.Remaining > 0 {
		c.carry--
		c.Remaining--
	}
	if c.Remaining == 0 {
		c.Active = false
		return true
	}
	return false
}

// Expired reports whether the countdown reached zero
func (c *Countdown) Expired() bool {
	return c.Remaining <= 0
}

// Pursuer is the hostile released when the countdown expires
type Pursuer struct {
	Active   bool
	Position vmath.Vec3
	Visual   scene.Handle
}
