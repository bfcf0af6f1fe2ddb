package system

import (
	"math"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/config"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// HostileSystem owns spawning, steering, contact damage and the death lifecycle of rats
type HostileSystem struct {
	env     Env
	dir     *component.Directory
	body    *component.Body
	inv     *component.Inventory
	session *component.Session

	base    config.Difficulty
	scaling config.Progression
	current config.Difficulty

	spawnElapsed float64

	statSpawned *status.Counter
	statBosses  *status.Counter
	statRemoved *status.Counter
	statActive  *status.Gauge

	enabled bool
}

// NewHostileSystem creates the hostile system for one session
func NewHostileSystem(env Env, dir *component.Directory, body *component.Body, inv *component.Inventory,
	session *component.Session, diff config.Difficulty, scaling config.Progression) *HostileSystem {
	s := &HostileSystem{
		env:     env,
		dir:     dir,
		body:    body,
		inv:     inv,
		session: session,
		base:    diff,
		scaling: scaling,

		statSpawned: env.Status.Counters.Get("hostile.spawned"),
		statBosses:  env.Status.Counters.Get("hostile.bosses"),
		statRemoved: env.Status.Counters.Get("hostile.removed"),
		statActive:  env.Status.Gauges.Get("hostile.count"),
	}
	s.Init()
	return s
}

// Init clears the population and resets difficulty to level 1
func (s *HostileSystem) Init() {
	for _, h := range s.dir.Clear() {
		s.discard(h)
	}
	s.current = s.base.AtLevel(1, s.scaling)
	s.spawnElapsed = 0
	s.statActive.Set(0)
	s.enabled = true
}

// Name returns the system's name
func (s *HostileSystem) Name() string {
	return "hostile"
}

// Priority returns the system's priority
func (s *HostileSystem) Priority() int {
	return parameter.PriorityHostile
}

// EventTypes returns the event types HostileSystem handles
func (s *HostileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLevelUp,
		event.EventSystemToggle,
	}
}

// HandleEvent rescales difficulty on level-up and applies toggles addressed to hostile
func (s *HostileSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSystemToggle:
		if p, ok := ev.Payload.(*event.SystemTogglePayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
	case event.EventLevelUp:
		if p, ok := ev.Payload.(*event.LevelUpPayload); ok {
			s.current = s.base.AtLevel(p.Level, s.scaling)
		}
	}
}

// Difficulty returns the effective difficulty at the current level
func (s *HostileSystem) Difficulty() config.Difficulty {
	return s.current
}

// Update runs the spawn timer, steers and moves every hostile, applies contact damage and sweeps the dead
func (s *HostileSystem) Update(dt float64) {
	if !s.enabled {
		return
	}

	s.spawnElapsed += dt
	if s.spawnElapsed >= s.current.SpawnInterval.Seconds() {
		s.spawnElapsed = 0
		if !s.dir.BossPresent() {
			s.SpawnRegular()
		}
	}

	for _, h := range s.dir.All() {
		switch h.State {
		case component.HostileActive:
			s.steer(h)
			h.Position[0] += h.Velocity[0] * dt * parameter.HostileMoveScale
			h.Position[2] += h.Velocity[2] * dt * parameter.HostileMoveScale
			h.Yaw = vmath.YawTo(h.Position, s.body.Position)
			s.env.View.MoveVisual(h.Visual, h.Position)
		case component.HostileDying:
			for _, b := range h.StepBursts() {
				s.dropBurst(b)
			}
			for _, b := range h.Bursts {
				s.env.View.MoveVisual(b.Visual, b.Particles[0])
			}
		}
		if !h.IsRemovable() {
			s.contact(h)
		}
	}

	for _, h := range s.dir.Sweep() {
		s.discard(h)
		s.statRemoved.Inc()
		s.env.Queue.Emit(event.EventHostileRemoved, &event.HostilePayload{
			ID:       uint32(h.ID),
			Boss:     h.Kind == component.HostileBoss,
			Position: h.Position,
		})
	}
	s.statActive.Set(float64(s.dir.Len()))
}

// steer blends velocity toward the player on the horizontal plane
func (s *HostileSystem) steer(h *component.Hostile) {
	dir := vmath.SafeNormalize(s.body.Position.Sub(h.Position))
	if h.Kind == component.HostileBoss {
		speed := parameter.BossChaseSpeed * s.current.SpeedScale
		h.Velocity[0] += (dir[0]*speed - h.Velocity[0]) * parameter.BossSteerFactor
		h.Velocity[2] += (dir[2]*speed - h.Velocity[2]) * parameter.BossSteerFactor
		if s.env.RNG.Float64() < parameter.BossChargeChance {
			h.Velocity = h.Velocity.Mul(parameter.BossChargeMultiplier)
		}
		return
	}
	speed := parameter.RegularChaseSpeed * s.current.SpeedScale
	jx := (s.env.RNG.Float64() - 0.5) * s.current.Jitter
	jz := (s.env.RNG.Float64() - 0.5) * s.current.Jitter
	h.Velocity[0] += (dir[0]*speed+jx-h.Velocity[0]) * parameter.RegularSteerFactor
	h.Velocity[2] += (dir[2]*speed+jz-h.Velocity[2]) * parameter.RegularSteerFactor
}

func (s *HostileSystem) contact(h *component.Hostile) {
	radius, dmg := parameter.RegularContactRadius, parameter.RegularContactDamage
	if h.Kind == component.HostileBoss {
		radius, dmg = parameter.BossContactRadius, parameter.BossContactDamage
	}
	if vmath.Distance(h.Position, s.body.Position) < radius {
		damagePlayer(s.env, s.body, s.inv, s.session, dmg, h.Position)
	}
}

// spawnPoint picks a point at distance from the player in a random horizontal direction
func (s *HostileSystem) spawnPoint(distance float64) vmath.Vec3 {
	angle := s.env.RNG.Float64() * 2 * math.Pi
	return vmath.Vec3{
		s.body.Position[0] + math.Cos(angle)*distance,
		parameter.HostileSpawnHeight,
		s.body.Position[2] + math.Sin(angle)*distance,
	}
}

// SpawnRegular adds one regular rat 15 to 20 units from the player
func (s *HostileSystem) SpawnRegular() *component.Hostile {
	dist := parameter.HostileSpawnMinDistance + s.env.RNG.Float64()*parameter.HostileSpawnDistanceJitter
	h := component.NewHostile(s.dir.NextID(), component.HostileRegular, s.spawnPoint(dist),
		s.current.RegularHealth, parameter.RegularScale)
	h.Visual = s.env.View.CreateVisual(scene.VisualRegular, h.Position)
	s.dir.AddRegular(h)
	s.statSpawned.Inc()
	s.env.Queue.Emit(event.EventHostileSpawned, &event.HostilePayload{
		ID:       uint32(h.ID),
		Position: h.Position,
		Health:   h.Health,
	})
	return h
}

// SpawnBoss adds the boss unless one is already Active or Dying
func (s *HostileSystem) SpawnBoss() (*component.Hostile, bool) {
	if s.dir.BossPresent() {
		return nil, false
	}
	h := component.NewHostile(s.dir.NextID(), component.HostileBoss, s.spawnPoint(parameter.BossSpawnDistance),
		parameter.BossHealth, parameter.BossScale)
	h.Visual = s.env.View.CreateVisual(scene.VisualBoss, h.Position)
	s.dir.SetBoss(h)
	s.statBosses.Inc()
	s.env.Queue.Emit(event.EventBossSpawned, &event.HostilePayload{
		ID:       uint32(h.ID),
		Boss:     true,
		Position: h.Position,
		Health:   h.Health,
	})
	s.env.Board.Show("BOSS RAT APPROACHING!", parameter.MessageDuration)
	return h, true
}

// Damage applies amount to h at point and returns true on the killing blow
// Hits on hostiles that are not Active are ignored
func (s *HostileSystem) Damage(h *component.Hostile, point vmath.Vec3, amount int) bool {
	if !h.IsAlive() {
		return false
	}
	s.addBurst(h, point)
	killed := h.TakeDamage(amount)
	s.env.Queue.Emit(event.EventHostileHit, &event.HostilePayload{
		ID:       uint32(h.ID),
		Boss:     h.Kind == component.HostileBoss,
		Position: point,
		Health:   h.Health,
	})
	if killed {
		s.die(h)
		return true
	}
	if h.Kind == component.HostileBoss {
		h.Scale *= parameter.BossRageScale
		s.env.Sched.After(parameter.BossRageDuration, h.Token, func() {
			h.Scale /= parameter.BossRageScale
		})
	}
	return false
}

// die scatters the death bursts and schedules the end of the death delay
func (s *HostileSystem) die(h *component.Hostile) {
	bursts, delay := parameter.RegularDeathBursts, parameter.RegularDeathDelay
	if h.Kind == component.HostileBoss {
		bursts, delay = parameter.BossDeathBursts, parameter.BossDeathDelay
	}
	for range bursts {
		s.addBurst(h, h.Position)
	}
	s.env.Sched.After(delay, h.Token, func() {
		h.DelayElapsed = true
	})
}

func (s *HostileSystem) addBurst(h *component.Hostile, at vmath.Vec3) {
	b := component.NewDecayBurst(at, s.env.RNG)
	b.Visual = s.env.View.CreateVisual(scene.VisualBurst, at)
	h.Bursts = append(h.Bursts, b)
}

func (s *HostileSystem) dropBurst(b *component.DecayBurst) {
	s.env.View.RemoveVisual(b.Visual)
	b.Visual = scene.NoHandle
}

// discard releases every visual a hostile still holds
func (s *HostileSystem) discard(h *component.Hostile) {
	for _, b := range h.Bursts {
		s.dropBurst(b)
	}
	h.Bursts = nil
	s.env.View.RemoveVisual(h.Visual)
}

var (
	_ engine.System = (*HostileSystem)(nil)
	_ event.Handler = (*HostileSystem)(nil)
)
