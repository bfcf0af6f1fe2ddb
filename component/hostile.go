package component

import (
	"math/rand"

	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// DecayBurst is a cloud of falling particles left by a hit or a death
type DecayBurst struct {
	Particles []vmath.Vec3
	Visual    scene.Handle
}

// NewDecayBurst scatters BurstParticleCount particles in a cube around origin
func NewDecayBurst(origin vmath.Vec3, rng *rand.Rand) *DecayBurst {
	b := &DecayBurst{Particles: make([]vmath.Vec3, parameter.BurstParticleCount)}
	for i := range b.Particles {
		b.Particles[i] = origin.Add(vmath.Vec3{
			(rng.Float64() - 0.5) * parameter.BurstSpread,
			(rng.Float64() - 0.5) * parameter.BurstSpread,
			(rng.Float64() - 0.5) * parameter.BurstSpread,
		})
	}
	return b
}

// Fall drops every particle one step
func (b *DecayBurst) Fall() {
	for i := range b.Particles {
		b.Particles[i][1] -= parameter.BurstFallPerTick
	}
}

// Expired reports whether the lead particle crossed the floor
func (b *DecayBurst) Expired() bool {
	return len(b.Particles) == 0 || b.Particles[0][1] < parameter.BurstFloor
}

// Hostile is an AI-controlled enemy
type Hostile struct {
	ID        EntityID
	Kind      HostileKind
	Position  vmath.Vec3
	Velocity  vmath.Vec3
	Yaw       float64
	Health    int
	MaxHealth int
	Scale     float64
	State     HostileState
	Bursts    []*DecayBurst

	// DelayElapsed is set by the deferred death task
	DelayElapsed bool

	Visual scene.Handle
	Token  *engine.Token
}

// NewHostile creates an Active hostile with a fresh liveness token
func NewHostile(id EntityID, kind HostileKind, pos vmath.Vec3, health int, scale float64) *Hostile {
	return &Hostile{
		ID:        id,
		Kind:      kind,
		Position:  pos,
		Health:    health,
		MaxHealth: health,
		Scale:     scale,
		State:     HostileActive,
		Token:     engine.NewToken(),
	}
}

// TakeDamage applies amount to an Active hostile and returns true on the killing blow
// Health is clamped at zero; hits on non-Active hostiles are ignored
func (h *Hostile) TakeDamage(amount int) bool {
	if h.State != HostileActive || amount <= 0 {
		return false
	}
	h.Health -= amount
	if h.Health <= 0 {
		h.Health = 0
		h.State = HostileDying
		return true
	}
	return false
}

// IsAlive reports whether the hostile can still be hit
func (h *Hostile) IsAlive() bool {
	return h.State == HostileActive
}

// IsRemovable reports whether the death delay elapsed and all bursts finished falling
func (h *Hostile) IsRemovable() bool {
	return h.State == HostileDying && h.DelayElapsed && len(h.Bursts) == 0
}

// HealthPercent returns health as a fraction of max
func (h *Hostile) HealthPercent() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return vmath.Clamp(float64(h.Health)/float64(h.MaxHealth), 0, 1)
}

// StepBursts advances every burst and discards expired ones
func (h *Hostile) StepBursts() (expired []*DecayBurst) {
	kept := h.Bursts[:0]
	for _, b := range h.Bursts {
		b.Fall()
		if b.Expired() {
			expired = append(expired, b)
			continue
		}
		kept = append(kept, b)
	}
	h.Bursts = kept
	return expired
}
