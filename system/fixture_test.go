package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/config"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// fixture wires every system over an empty scene; tests add geometry as needed
type fixture struct {
	clock  *engine.Clock
	env    Env
	scene  *scene.Static
	layout scene.Layout

	dir     *component.Directory
	body    *component.Body
	inv     *component.Inventory
	prog    *component.Progression
	session *component.Session

	hostiles  *HostileSystem
	economy   *EconomySystem
	resolver  *HitResolver
	store     *Store
	hands     *AppendageSystem
	puzzles   *PuzzleSystem
	countdown *CountdownSystem
	movement  *MovementSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	diff, err := cfg.Active()
	require.NoError(t, err)
	shop, err := cfg.Shop()
	require.NoError(t, err)

	clock := engine.NewClock()
	sched := engine.NewScheduler(clock)
	queue := event.NewQueue()
	static := scene.NewStatic()
	f := &fixture{
		clock: clock,
		scene: static,
		env: Env{
			Sched:  sched,
			Queue:  queue,
			View:   static,
			Board:  NewMessageBoard(sched, queue),
			RNG:    rand.New(rand.NewSource(7)),
			Status: status.NewRegistry(),
		},
		dir:     component.NewDirectory(),
		body:    component.NewBody(),
		inv:     component.NewInventory(),
		prog:    component.NewProgression(),
		session: &component.Session{},
	}
	f.layout = buildTestRoom(static)

	f.movement = NewMovementSystem(f.env, f.body)
	f.hostiles = NewHostileSystem(f.env, f.dir, f.body, f.inv, f.session, diff, cfg.Progression)
	f.economy = NewEconomySystem(f.env, f.prog)
	f.store = NewStore(f.env, shop, f.prog, f.inv, f.body)
	f.resolver = NewHitResolver(f.env, f.dir, static, f.hostiles, f.economy, cfg.BossKillThreshold)
	f.hands = NewAppendageSystem(f.env, f.body, f.inv, static, f.resolver)
	f.puzzles = NewPuzzleSystem(f.env, static, f.layout, f.session)
	f.countdown = NewCountdownSystem(f.env, f.body, f.inv, f.session, cfg.Countdown)
	queue.Consume()
	return f
}

// buildTestRoom places the puzzle props far from the origin on a fixed grid
func buildTestRoom(s *scene.Static) scene.Layout {
	l := scene.Layout{
		Keys:    make(map[int]scene.Handle),
		Targets: make(map[int]vmath.Vec3),
	}
	l.Button = s.AddSolid(scene.VisualButton, vmath.Vec3{15, 1, 15}, vmath.Vec3{0.6, 0.2, 0.6}, true)
	l.Keys[1] = s.CreateVisual(scene.VisualKey, vmath.Vec3{15, 1.5, 15})
	l.Targets[1] = vmath.Vec3{15, 1, 15}
	for i := range l.Switches {
		l.Switches[i] = s.AddSolid(scene.VisualSwitch, vmath.Vec3{-15 + float64(i)*2, 3, 15}, vmath.Vec3{0.3, 0.8, 0.2}, true)
	}
	l.Keys[2] = s.CreateVisual(scene.VisualKey, vmath.Vec3{-15, 3.5, 15})
	l.Targets[2] = vmath.Vec3{-13, 3, 15}
	l.Door = s.AddSolid(scene.VisualDoor, vmath.Vec3{15, 1.5, -15}, vmath.Vec3{2, 3, 0.2}, true)
	l.Targets[3] = vmath.Vec3{15, 1.5, -15}
	l.TileWall = s.AddSolid(scene.VisualTileWall, vmath.Vec3{-15, 3, -15}, vmath.Vec3{4, 4, 0.2}, false)
	return l
}

// step advances the clock n ticks, draining deferred tasks and updating systems in order
func (f *fixture) step(n int, systems ...engine.System) {
	for range n {
		f.clock.Advance()
		f.env.Queue.SetTick(f.clock.Tick())
		f.env.Sched.RunDue()
		for _, s := range systems {
			s.Update(parameter.TickSeconds)
		}
	}
}

// stepFor advances by at least d
func (f *fixture) stepFor(seconds float64, systems ...engine.System) {
	f.step(int(seconds/parameter.TickSeconds)+1, systems...)
}

func (f *fixture) events() []event.GameEvent {
	return f.env.Queue.Consume()
}

func countEvents(evs []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// placeRegular adds a stationary regular at pos
func (f *fixture) placeRegular(pos vmath.Vec3) *component.Hostile {
	h := f.hostiles.SpawnRegular()
	h.Position = pos
	f.scene.MoveVisual(h.Visual, pos)
	return h
}

// placeBoss adds the boss at pos
func (f *fixture) placeBoss(t *testing.T, pos vmath.Vec3) *component.Hostile {
	t.Helper()
	h, ok := f.hostiles.SpawnBoss()
	require.True(t, ok)
	h.Position = pos
	return h
}
