package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

func TestSpawnRegularAroundPlayer(t *testing.T) {
	f := newFixture(t)
	f.body.Position = vmath.Vec3{3, 2, -4}
	for range 100 {
		h := f.hostiles.SpawnRegular()
		d := vmath.Distance(vmath.Flatten(h.Position), vmath.Flatten(f.body.Position))
		assert.GreaterOrEqual(t, d, parameter.HostileSpawnMinDistance-1e-9)
		assert.LessOrEqual(t, d, parameter.HostileSpawnMinDistance+parameter.HostileSpawnDistanceJitter+1e-9)
		assert.Equal(t, parameter.HostileSpawnHeight, h.Position[1])
		assert.Equal(t, 2, h.Health, "normal preset")
		assert.Equal(t, component.HostileActive, h.State)
	}
	assert.Len(t, f.dir.Regulars(), 100)
	assert.Equal(t, 100, countEvents(f.events(), event.EventHostileSpawned))
}

func TestSpawnBossAnnounces(t *testing.T) {
	f := newFixture(t)
	h, ok := f.hostiles.SpawnBoss()
	require.True(t, ok)
	assert.Equal(t, parameter.BossHealth, h.Health)
	assert.Equal(t, parameter.BossScale, h.Scale)
	assert.InDelta(t, parameter.BossSpawnDistance, vmath.Distance(vmath.Flatten(h.Position), vmath.Flatten(f.body.Position)), 1e-9)
	assert.Equal(t, "BOSS RAT APPROACHING!", f.env.Board.Text())
	assert.Equal(t, 1, countEvents(f.events(), event.EventBossSpawned))

	f.stepFor(parameter.MessageDuration.Seconds())
	assert.Empty(t, f.env.Board.Text())
}

func TestAtMostOneBoss(t *testing.T) {
	f := newFixture(t)
	boss := f.placeBoss(t, vmath.Vec3{0, 1, -20})
	_, ok := f.hostiles.SpawnBoss()
	assert.False(t, ok, "active boss blocks spawn")

	for range parameter.BossHealth {
		f.hostiles.Damage(boss, boss.Position, 1)
	}
	require.Equal(t, component.HostileDying, boss.State)
	_, ok = f.hostiles.SpawnBoss()
	assert.False(t, ok, "dying boss still blocks spawn")

	f.stepFor(parameter.BossDeathDelay.Seconds()+1, f.hostiles)
	assert.Equal(t, component.HostileRemoved, boss.State)
	assert.False(t, f.dir.BossPresent())

	_, ok = f.hostiles.SpawnBoss()
	assert.True(t, ok)
}

func TestHostileHealthMonotonic(t *testing.T) {
	f := newFixture(t)
	h := f.placeRegular(vmath.Vec3{0, 1, -10})

	prev := h.Health
	killed := 0
	for range 5 {
		if f.hostiles.Damage(h, h.Position, 1) {
			killed++
		}
		assert.LessOrEqual(t, h.Health, prev)
		assert.GreaterOrEqual(t, h.Health, 0)
		prev = h.Health
	}
	assert.Equal(t, 1, killed, "exactly one killing blow")
	assert.Equal(t, component.HostileDying, h.State)
	assert.Len(t, h.Bursts, 2+parameter.RegularDeathBursts, "one per landed hit plus the death bursts")
}

func TestNoRegularSpawnWhileBossPresent(t *testing.T) {
	f := newFixture(t)
	f.placeBoss(t, vmath.Vec3{0, 1, -20})
	f.stepFor(2*f.hostiles.Difficulty().SpawnInterval.Seconds(), f.hostiles)
	assert.Empty(t, f.dir.Regulars())
}

func TestRegularSpawnTimer(t *testing.T) {
	f := newFixture(t)
	f.stepFor(f.hostiles.Difficulty().SpawnInterval.Seconds(), f.hostiles)
	assert.Len(t, f.dir.Regulars(), 1)
}

func TestHostilesChasePlayer(t *testing.T) {
	f := newFixture(t)
	h := f.placeRegular(vmath.Vec3{0, 1, -15})
	before := vmath.Distance(h.Position, f.body.Position)
	f.stepFor(2, f.hostiles)
	assert.Less(t, vmath.Distance(h.Position, f.body.Position), before)
	assert.Equal(t, 1.0, h.Position[1], "movement stays on the ground plane")
}

func TestBossRageReverts(t *testing.T) {
	f := newFixture(t)
	boss := f.placeBoss(t, vmath.Vec3{0, 1, -20})
	f.hostiles.Damage(boss, boss.Position, 1)
	assert.InDelta(t, parameter.BossScale*parameter.BossRageScale, boss.Scale, 1e-9)

	f.stepFor(parameter.BossRageDuration.Seconds())
	assert.InDelta(t, parameter.BossScale, boss.Scale, 1e-9)
}

func TestContactDamageUsesArmor(t *testing.T) {
	f := newFixture(t)
	f.inv.Defense = 20
	f.placeRegular(vmath.Vec3{0.5, 1, 0})

	f.step(1, f.hostiles)
	assert.InDelta(t, parameter.PlayerMaxHealth-8, f.body.Health, 1e-9)

	evs := f.events()
	require.Equal(t, 1, countEvents(evs, event.EventPlayerDamaged))
	for _, ev := range evs {
		if p, ok := ev.Payload.(*event.DamagePayload); ok {
			assert.InDelta(t, 8, p.Amount, 1e-9)
		}
	}
}

func TestContactDamageKillsPlayer(t *testing.T) {
	f := newFixture(t)
	f.placeBoss(t, vmath.Vec3{0, 1, 0.5})
	f.step(4, f.hostiles)
	assert.True(t, f.body.Dead())
	assert.Equal(t, component.OutcomeLose, f.session.Outcome)
	assert.Equal(t, "You died!", f.session.Message)
	assert.Equal(t, 1, countEvents(f.events(), event.EventGameOver))
}

func TestDyingHostileIsRemovedAndReleasesVisuals(t *testing.T) {
	f := newFixture(t)
	baseline := f.scene.Len()
	h := f.placeRegular(vmath.Vec3{0, 1, -10})
	f.hostiles.Damage(h, h.Position, 1)
	f.hostiles.Damage(h, h.Position, 1)
	require.Equal(t, component.HostileDying, h.State)
	assert.Greater(t, f.scene.Len(), baseline)

	f.stepFor(1, f.hostiles)
	assert.Equal(t, component.HostileDying, h.State, "death delay not elapsed")
	assert.Empty(t, h.Bursts, "bursts fell below the floor")

	f.stepFor(parameter.RegularDeathDelay.Seconds(), f.hostiles)
	assert.Equal(t, component.HostileRemoved, h.State)
	assert.Zero(t, f.dir.Len())
	assert.Equal(t, baseline, f.scene.Len())
	assert.Equal(t, 1, countEvents(f.events(), event.EventHostileRemoved))
}

func TestDyingHostileDoesNotMove(t *testing.T) {
	f := newFixture(t)
	h := f.placeRegular(vmath.Vec3{0, 1, -10})
	h.Velocity = vmath.Vec3{1, 0, 1}
	f.hostiles.Damage(h, h.Position, 2)
	pos := h.Position
	f.step(10, f.hostiles)
	assert.Equal(t, pos, h.Position)
}

func TestLevelUpScalesDifficulty(t *testing.T) {
	f := newFixture(t)
	base := f.hostiles.Difficulty()
	f.hostiles.HandleEvent(event.GameEvent{Type: event.EventLevelUp, Payload: &event.LevelUpPayload{Level: 11}})
	got := f.hostiles.Difficulty()
	assert.InDelta(t, base.SpeedScale*math.Pow(1.005, 10), got.SpeedScale, 1e-9)
	assert.Less(t, got.SpawnInterval, base.SpawnInterval)
}

func TestDyingHostileKeepsDealingContactDamage(t *testing.T) {
	f := newFixture(t)
	h := f.placeRegular(vmath.Vec3{0.5, 1, 0})
	f.hostiles.Damage(h, h.Position, 1)
	f.hostiles.Damage(h, h.Position, 1)
	require.Equal(t, component.HostileDying, h.State)
	f.events()

	f.step(3, f.hostiles)
	assert.InDelta(t, parameter.PlayerMaxHealth-3*parameter.RegularContactDamage, f.body.Health, 1e-9)
	assert.Equal(t, 3, countEvents(f.events(), event.EventPlayerDamaged))

	limit := int(parameter.RegularDeathDelay.Seconds()/parameter.TickSeconds) + 10
	for range limit {
		f.body.Health = parameter.PlayerMaxHealth
		f.step(1, f.hostiles)
		hits := countEvents(f.events(), event.EventPlayerDamaged)
		if h.State == component.HostileRemoved {
			assert.Zero(t, hits, "removable hostile deals no damage")
			assert.Equal(t, parameter.PlayerMaxHealth, f.body.Health)
			assert.Zero(t, f.dir.Len())
			return
		}
		assert.Equal(t, 1, hits, "dying hostile still in contact")
	}
	t.Fatal("hostile never became removable")
}

func TestHostileToggleStopsSpawning(t *testing.T) {
	f := newFixture(t)
	toggle := func(name string, on bool) {
		f.hostiles.HandleEvent(event.GameEvent{
			Type:    event.EventSystemToggle,
			Payload: &event.SystemTogglePayload{SystemName: name, Enabled: on},
		})
	}

	toggle("movement", false)
	toggle(f.hostiles.Name(), false)
	f.stepFor(6, f.hostiles)
	assert.Zero(t, f.dir.Len())

	toggle(f.hostiles.Name(), true)
	f.stepFor(6, f.hostiles)
	assert.Equal(t, 1, f.dir.Len())
}
