package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

func TestAddXPOverflowCarries(t *testing.T) {
	p := &Progression{Level: 1, XP: 90, XPToNext: 100}
	assert.True(t, p.AddXP(30))
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 20, p.XP)
	assert.Equal(t, 150, p.XPToNext)
}

func TestAddXPGainsOneLevelPerAward(t *testing.T) {
	p := NewProgression()
	assert.True(t, p.AddXP(260))
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 160, p.XP, "surplus stays banked past the new threshold")
	assert.Equal(t, 150, p.XPToNext)

	assert.False(t, p.AddXP(0))
	assert.False(t, p.AddXP(-5))
	assert.Equal(t, 2, p.Level)

	assert.True(t, p.AddXP(1), "next award spends the banked surplus")
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 11, p.XP)
	assert.Equal(t, 225, p.XPToNext)
}

func TestXPToNextFloors(t *testing.T) {
	p := &Progression{Level: 3, XPToNext: 225}
	p.AddXP(225)
	assert.Equal(t, 337, p.XPToNext)
}

func TestBodyDamageWithDefense(t *testing.T) {
	b := NewBody()
	assert.Equal(t, 10.0, b.TakeDamage(10, 0))
	assert.Equal(t, 7.5, b.TakeDamage(10, 25))
	assert.InDelta(t, 82.5, b.Health, 1e-9)

	assert.Equal(t, 0.0, b.TakeDamage(10, 150), "defense above 100 never heals")
	b.TakeDamage(1000, 0)
	assert.Equal(t, 0.0, b.Health)
	assert.True(t, b.Dead())
}

func TestBodyHealCaps(t *testing.T) {
	b := NewBody()
	b.Health = 90
	assert.Equal(t, 10.0, b.Heal(40))
	assert.Equal(t, parameter.PlayerMaxHealth, b.Health)
}

func TestBodyForceAccumulates(t *testing.T) {
	b := NewBody()
	b.AddForce(vmath.Vec3{1, 0, 0})
	b.AddForce(vmath.Vec3{0, 2, 0})
	assert.Equal(t, vmath.Vec3{1, 2, 0}, b.Force)
}

func TestCountdownDecrementsPerSecond(t *testing.T) {
	c := NewCountdown(3 * time.Second)
	assert.False(t, c.Advance(0.5))
	assert.Equal(t, 3, c.Remaining)
	assert.False(t, c.Advance(0.5))
	assert.Equal(t, 2, c.Remaining)
	assert.False(t, c.Advance(1))
	assert.True(t, c.Advance(1))
	assert.True(t, c.Expired())
	assert.False(t, c.Advance(1), "expiry reported once")
}

func TestCountdownInactiveHolds(t *testing.T) {
	c := NewCountdown(5 * time.Second)
	c.Active = false
	c.Advance(2)
	assert.Equal(t, 5, c.Remaining)
}

func TestSessionFirstEndWins(t *testing.T) {
	var s Session
	assert.False(t, s.Over())
	assert.True(t, s.End(OutcomeLose, "You died!"))
	assert.False(t, s.End(OutcomeWin, "late"))
	assert.Equal(t, OutcomeLose, s.Outcome)
	assert.Equal(t, "You died!", s.Message)
}

func TestGrappleCapsRope(t *testing.T) {
	g := Grapple{MaxRopeLength: 20}
	g.Attach(vmath.Vec3{1, 2, 3}, 35)
	assert.True(t, g.Attached)
	assert.Equal(t, 20.0, g.RopeLength)
	assert.Equal(t, vmath.Vec3{1, 2, 3}, *g.Anchor)

	g.Detach()
	assert.False(t, g.Attached)
	assert.Nil(t, g.Anchor)
}
