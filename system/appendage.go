package system

import (
	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// Hand ids
const (
	HandLeft  = 0
	HandRight = 1
)

// Appendage is one grapple hand with its rope and projectiles in flight
type Appendage struct {
	ID          int
	Grapple     component.Grapple
	Projectiles []*component.Projectile
}

// AppendageSystem drives both hands: shooting, grappling, rope physics and projectile flight
type AppendageSystem struct {
	env      Env
	body     *component.Body
	inv      *component.Inventory
	geom     scene.Geometry
	resolver *HitResolver
	hands    [parameter.HandCount]*Appendage

	statShots    *status.Counter
	statGrapples *status.Counter
	statFlying   *status.Gauge

	enabled bool
}

// NewAppendageSystem creates both hands
func NewAppendageSystem(env Env, body *component.Body, inv *component.Inventory, geom scene.Geometry, resolver *HitResolver) *AppendageSystem {
	s := &AppendageSystem{
		env:      env,
		body:     body,
		inv:      inv,
		geom:     geom,
		resolver: resolver,

		statShots:    env.Status.Counters.Get("hand.shots"),
		statGrapples: env.Status.Counters.Get("hand.grapples"),
		statFlying:   env.Status.Gauges.Get("hand.projectiles"),
	}
	s.Init()
	return s
}

// Init detaches both ropes and drops every projectile
func (s *AppendageSystem) Init() {
	for i := range s.hands {
		if a := s.hands[i]; a != nil {
			for _, p := range a.Projectiles {
				s.env.View.RemoveVisual(p.Visual)
			}
		}
		s.hands[i] = &Appendage{
			ID:      i,
			Grapple: component.Grapple{MaxRopeLength: parameter.MaxRopeLength},
		}
	}
	s.enabled = true
}

// Name returns the system's name
func (s *AppendageSystem) Name() string {
	return "appendage"
}

// Priority returns the system's priority
func (s *AppendageSystem) Priority() int {
	return parameter.PriorityAppendage
}

// EventTypes returns the event types AppendageSystem handles
func (s *AppendageSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
	}
}

// HandleEvent applies a toggle addressed to this system
func (s *AppendageSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SystemTogglePayload); ok && p.SystemName == s.Name() {
		s.enabled = p.Enabled
	}
}

// Hand returns appendage id, nil when out of range
func (s *AppendageSystem) Hand(id int) *Appendage {
	if id < 0 || id >= len(s.hands) {
		return nil
	}
	return s.hands[id]
}

// HandPosition returns the world position of a hand for the view direction dir
func (s *AppendageSystem) HandPosition(id int, dir vmath.Vec3) vmath.Vec3 {
	side := parameter.HandSideOffset
	if id == HandLeft {
		side = -side
	}
	return s.body.Position.
		Add(vmath.RightOf(dir).Mul(side)).
		Add(vmath.Up.Mul(parameter.HandDownOffset)).
		Add(dir.Mul(parameter.HandForwardOffset))
}

// Shoot fires hand id along dir: launches a projectile and runs the instant hit test on the aim ray
// A miss on hostiles that lands on grapple-able geometry in range attaches the rope
// No-op while the hand is grappling
func (s *AppendageSystem) Shoot(id int, dir vmath.Vec3) Hit {
	a := s.Hand(id)
	if a == nil || a.Grapple.Attached {
		return Hit{}
	}
	dir = vmath.SafeNormalize(dir)
	if dir == (vmath.Vec3{}) {
		return Hit{}
	}

	origin := s.HandPosition(id, dir)
	p := &component.Projectile{
		Position: origin,
		Velocity: dir.Mul(s.inv.ProjectileSpeed),
		Owner:    id,
	}
	p.Visual = s.env.View.CreateVisual(scene.VisualProjectile, origin)
	a.Projectiles = append(a.Projectiles, p)
	s.statShots.Inc()
	s.env.Queue.Emit(event.EventShotFired, &event.ShotPayload{Hand: id, Origin: origin, Dir: dir})

	hit := s.resolver.ResolveRay(vmath.NewRay(s.body.Position, dir), parameter.ShotRange)
	switch {
	case hit.Hostile != nil:
		s.resolver.Apply(hit)
	case hit.Static != scene.NoHandle && hit.Distance <= parameter.GrappleRange && s.geom.Grappable(hit.Static):
		a.Grapple.Attach(hit.Point, vmath.Distance(s.body.Position, hit.Point))
		s.statGrapples.Inc()
		s.env.Queue.Emit(event.EventGrappleAttached, &event.GrapplePayload{
			Hand:       id,
			Anchor:     hit.Point,
			RopeLength: a.Grapple.RopeLength,
		})
	}
	return hit
}

// Release detaches hand id and flings the player
func (s *AppendageSystem) Release(id int) {
	a := s.Hand(id)
	if a == nil || !a.Grapple.Attached {
		return
	}
	anchor := *a.Grapple.Anchor
	impulse := vmath.SafeNormalize(s.body.Velocity.Sub(anchor)).Mul(parameter.ReleaseImpulse)
	s.body.AddForce(impulse)
	a.Grapple.Detach()
	s.env.Queue.Emit(event.EventGrappleReleased, &event.GrapplePayload{Hand: id, Anchor: anchor})
}

// Update applies rope constraints and swing forces, then flies every projectile
func (s *AppendageSystem) Update(dt float64) {
	if !s.enabled {
		return
	}
	lifetime := parameter.ProjectileLifetime.Seconds()
	flying := 0
	for _, a := range s.hands {
		if a.Grapple.Attached {
			s.constrain(&a.Grapple)
		}

		kept := a.Projectiles[:0]
		for _, p := range a.Projectiles {
			ray, length := p.Advance(dt)
			if p.Expired(lifetime) {
				s.env.View.RemoveVisual(p.Visual)
				continue
			}
			if hit := s.resolver.ResolveRay(ray, length); hit.Hostile != nil {
				s.resolver.Apply(hit)
				s.env.View.RemoveVisual(p.Visual)
				continue
			}
			s.env.View.MoveVisual(p.Visual, p.Position)
			kept = append(kept, p)
		}
		clear(a.Projectiles[len(kept):])
		a.Projectiles = kept
		flying += len(kept)
	}
	s.statFlying.Set(float64(flying))
}

// constrain pulls the player back onto the rope sphere and adds the tangential swing force
func (s *AppendageSystem) constrain(g *component.Grapple) {
	toAnchor := g.Anchor.Sub(s.body.Position)
	dist := toAnchor.Len()
	dir := vmath.SafeNormalize(toAnchor)
	if dist > g.RopeLength {
		s.body.Position = s.body.Position.Add(dir.Mul(dist - g.RopeLength))
		s.body.Velocity = s.body.Velocity.Mul(parameter.RopeDamping)
	}
	s.body.AddForce(dir.Cross(vmath.Up).Mul(parameter.SwingForce))
}

var (
	_ engine.System = (*AppendageSystem)(nil)
	_ event.Handler = (*AppendageSystem)(nil)
)
