package engine

import (
	"time"

	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
)

// Stepper advances a simulation by one fixed tick
type Stepper interface {
	Tick()
}

// Runner converts wall-clock time into fixed ticks
// Excess backlog beyond MaxCatchUpTicks is dropped to avoid a spiral after stalls
type Runner struct {
	time    TimeProvider
	stepper Stepper
	last    time.Time
	acc     time.Duration
	dropped int
}

// NewRunner creates a runner anchored at the provider's current time
func NewRunner(tp TimeProvider, s Stepper) *Runner {
	return &Runner{time: tp, stepper: s, last: tp.Now()}
}

// Pump executes the ticks owed since the previous call and returns how many ran
func (r *Runner) Pump() int {
	now := r.time.Now()
	r.acc += now.Sub(r.last)
	r.last = now

	n := 0
	for r.acc >= parameter.TickInterval {
		if n == parameter.MaxCatchUpTicks {
			r.dropped += int(r.acc / parameter.TickInterval)
			r.acc %= parameter.TickInterval
			break
		}
		r.stepper.Tick()
		r.acc -= parameter.TickInterval
		n++
	}
	return n
}

// Dropped returns the number of ticks discarded due to backlog
func (r *Runner) Dropped() int {
	return r.dropped
}
