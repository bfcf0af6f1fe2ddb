package system

import (
	"time"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// CaughtMessage ends the session when the pursuer reaches the player
const CaughtMessage = "The monster caught you!"

// CountdownSystem runs the session clock and the pursuer released when it expires
type CountdownSystem struct {
	env      Env
	body     *component.Body
	inv      *component.Inventory
	session  *component.Session
	duration time.Duration

	countdown *component.Countdown
	pursuer   *component.Pursuer

	statRemaining *status.Counter

	enabled bool
}

// NewCountdownSystem creates a countdown of duration
func NewCountdownSystem(env Env, body *component.Body, inv *component.Inventory, session *component.Session, duration time.Duration) *CountdownSystem {
	if duration <= 0 {
		duration = parameter.CountdownDuration
	}
	s := &CountdownSystem{
		env:      env,
		body:     body,
		inv:      inv,
		session:  session,
		duration: duration,

		statRemaining: env.Status.Counters.Get("countdown.remaining"),
	}
	s.Init()
	return s
}

// Init restarts the countdown and removes the pursuer
func (s *CountdownSystem) Init() {
	if s.pursuer != nil && s.pursuer.Active {
		s.env.View.RemoveVisual(s.pursuer.Visual)
	}
	s.countdown = component.NewCountdown(s.duration)
	s.pursuer = &component.Pursuer{}
	s.statRemaining.Set(int64(s.countdown.Remaining))
	s.enabled = true
}

// Name returns the system's name
func (s *CountdownSystem) Name() string {
	return "countdown"
}

// Priority returns the system's priority
func (s *CountdownSystem) Priority() int {
	return parameter.PriorityCountdown
}

// EventTypes returns the event types CountdownSystem handles
func (s *CountdownSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
	}
}

// HandleEvent applies a toggle addressed to this system
func (s *CountdownSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SystemTogglePayload); ok && p.SystemName == s.Name() {
		s.enabled = p.Enabled
	}
}

// Countdown exposes the timer for snapshots
func (s *CountdownSystem) Countdown() *component.Countdown {
	return s.countdown
}

// Pursuer exposes the pursuer for snapshots
func (s *CountdownSystem) Pursuer() *component.Pursuer {
	return s.pursuer
}

// Update ticks the clock down and drives the pursuer once released
func (s *CountdownSystem) Update(dt float64) {
	if !s.enabled || s.session.Over() {
		return
	}
	if s.countdown.Advance(dt) {
		s.release()
	}
	s.statRemaining.Set(int64(s.countdown.Remaining))
	if s.pursuer.Active {
		s.chase()
	}
}

func (s *CountdownSystem) release() {
	s.pursuer.Active = true
	s.pursuer.Position = vmath.Vec3{0, parameter.PursuerStartY, 0}
	s.pursuer.Visual = s.env.View.CreateVisual(scene.VisualPursuer, s.pursuer.Position)
	s.env.Queue.Emit(event.EventCountdownExpired, nil)
}

// chase steps straight at the player, then applies the catch and aura checks
func (s *CountdownSystem) chase() {
	p := s.pursuer
	to := s.body.Position.Sub(p.Position)
	if d := to.Len(); d > 0 {
		p.Position = p.Position.Add(to.Mul(min(parameter.PursuerStepPerTick, d) / d))
	}
	s.env.View.MoveVisual(p.Visual, p.Position)

	dist := vmath.Distance(p.Position, s.body.Position)
	if dist < parameter.PursuerCatchRadius {
		endSession(s.env, s.session, component.OutcomeLose, CaughtMessage)
		return
	}
	if dist < parameter.PursuerDamageRadius {
		damagePlayer(s.env, s.body, s.inv, s.session, parameter.PursuerDamagePerTick, p.Position)
	}
}

var (
	_ engine.System = (*CountdownSystem)(nil)
	_ event.Handler = (*CountdownSystem)(nil)
)
