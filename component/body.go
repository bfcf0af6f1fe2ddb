package component

import (
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// Intent is the movement input held for the current tick
type Intent struct {
	Forward float64 // -1..1
	Right   float64 // -1..1
	Run     bool
	Jump    bool
}

// Body is the player's physical state
// Position is the eye; ground contact is at eye height
type Body struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
	Force    vmath.Vec3 // Accumulated impulses, consumed by the next movement step
	Yaw      float64
	Pitch    float64
	Health   float64
	Grounded bool
	Intent   Intent
}

// NewBody places the player at the arena center on the ground at full health
func NewBody() *Body {
	return &Body{
		Position: vmath.Vec3{0, parameter.PlayerEyeHeight, 0},
		Health:   parameter.PlayerMaxHealth,
		Grounded: true,
	}
}

// AddForce accumulates an impulse
func (b *Body) AddForce(f vmath.Vec3) {
	b.Force = b.Force.Add(f)
}

// Aim returns the view direction
func (b *Body) Aim() vmath.Vec3 {
	return vmath.Direction(b.Yaw, b.Pitch)
}

// TakeDamage reduces health by raw minus the defense percentage and returns the damage applied
func (b *Body) TakeDamage(raw, defense float64) float64 {
	dmg := max(0, raw-defense/100*raw)
	b.Health = max(0, b.Health-dmg)
	return dmg
}

// Heal restores health up to the cap and returns the amount restored
func (b *Body) Heal(amount float64) float64 {
	before := b.Health
	b.Health = min(parameter.PlayerMaxHealth, b.Health+amount)
	return b.Health - before
}

// Dead reports whether health is exhausted
func (b *Body) Dead() bool {
	return b.Health <= 0
}
