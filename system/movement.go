package system

import (
	"math"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// MovementSystem integrates the player body: intent, accumulated forces, gravity, ground and arena bounds
type MovementSystem struct {
	env  Env
	body *component.Body

	canJump   bool
	jumpToken *engine.Token

	statSpeed *status.Gauge

	enabled bool
}

// NewMovementSystem creates the movement system for body
func NewMovementSystem(env Env, body *component.Body) *MovementSystem {
	s := &MovementSystem{
		env:       env,
		body:      body,
		statSpeed: env.Status.Gauges.Get("player.speed"),
	}
	s.Init()
	return s
}

// Init places the player at spawn
func (s *MovementSystem) Init() {
	s.jumpToken.Kill()
	s.jumpToken = nil
	*s.body = *component.NewBody()
	s.canJump = true
	s.enabled = true
}

// Name returns the system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// EventTypes returns the event types MovementSystem handles
func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
	}
}

// HandleEvent applies a toggle addressed to this system
func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SystemTogglePayload); ok && p.SystemName == s.Name() {
		s.enabled = p.Enabled
	}
}

// Update advances the body one step
func (s *MovementSystem) Update(dt float64) {
	if !s.enabled {
		return
	}
	b := s.body

	if !b.Grounded {
		b.Velocity[1] -= parameter.Gravity * dt
	}
	if b.Intent.Jump {
		b.Intent.Jump = false
		s.jump()
	}

	b.Velocity = b.Velocity.Add(b.Force.Mul(parameter.ForceResponse * dt))
	b.Force = vmath.Vec3{}

	speed := parameter.WalkSpeed
	friction := parameter.WalkFriction
	if b.Intent.Run {
		speed = parameter.RunSpeed
		friction = parameter.RunFriction
	}
	fwd, right := b.Intent.Forward, b.Intent.Right
	if n := math.Hypot(fwd, right); n > 1 {
		fwd, right = fwd/n, right/n
	}
	forward := vmath.SafeNormalize(vmath.Flatten(vmath.Direction(b.Yaw, 0)))
	side := vmath.RightOf(forward)
	target := forward.Mul(fwd * speed).Add(side.Mul(right * speed))

	accel := parameter.AirAcceleration
	if b.Grounded {
		accel = parameter.GroundAcceleration
	}
	b.Velocity[0] += (target[0] - b.Velocity[0]) * accel * dt
	b.Velocity[2] += (target[2] - b.Velocity[2]) * accel * dt
	if b.Grounded {
		b.Velocity[0] *= friction
		b.Velocity[2] *= friction
	}

	for _, axis := range [2]int{0, 2} {
		next := b.Position[axis] + b.Velocity[axis]*dt
		if math.Abs(next) < parameter.WorldBound {
			b.Position[axis] = next
		} else {
			b.Velocity[axis] = 0
		}
	}
	b.Position[1] += b.Velocity[1] * dt

	if b.Position[1] <= parameter.PlayerEyeHeight {
		b.Position[1] = parameter.PlayerEyeHeight
		b.Velocity[1] = 0
		b.Grounded = true
	} else {
		b.Grounded = false
	}
	s.statSpeed.Set(vmath.Flatten(b.Velocity).Len())
}

func (s *MovementSystem) jump() {
	if !s.canJump || !s.body.Grounded {
		return
	}
	s.body.Velocity[1] = parameter.JumpVelocity
	s.body.Grounded = false
	s.canJump = false
	s.jumpToken = engine.NewToken()
	s.env.Sched.After(parameter.JumpCooldown, s.jumpToken, func() {
		s.canJump = true
	})
}

var (
	_ engine.System = (*MovementSystem)(nil)
	_ event.Handler = (*MovementSystem)(nil)
)
