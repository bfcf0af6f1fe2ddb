// Package game assembles the systems into a fixed-timestep session
package game

import (
	"fmt"
	"log"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/config"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
	"github.com/mittubose/Grabby-Hand-rat-killer/system"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// Options tunes session construction
type Options struct {
	// Seed drives every random choice; 0 picks one from the wall clock
	Seed int64

	// Logger receives session milestones; nil disables the log handler
	Logger *log.Logger

	// Handlers receive routed events after the systems, in order
	Handlers []event.Handler
}

// Simulation owns one session: state, systems, scheduler and event routing
// Not safe for concurrent use; a single goroutine drives Tick and Apply
type Simulation struct {
	ID   uuid.UUID
	Seed int64

	clock  *engine.Clock
	sched  *engine.Scheduler
	queue  *event.Queue
	router *event.Router
	scene  *scene.Static
	layout scene.Layout
	env    system.Env

	dir     *component.Directory
	body    *component.Body
	inv     *component.Inventory
	prog    *component.Progression
	session *component.Session

	hostiles  *system.HostileSystem
	movement  *system.MovementSystem
	economy   *system.EconomySystem
	resolver  *system.HitResolver
	store     *system.Store
	hands     *system.AppendageSystem
	puzzles   *system.PuzzleSystem
	countdown *system.CountdownSystem

	systems []engine.System
	pending []Action

	shopOpen bool
	damage   []DamageView

	statTicks   *status.Counter
	statTasks   *status.Counter
	statSkipped *status.Counter
	statLost    *status.Counter
}

// New builds a session from cfg
func New(cfg *config.Config, opts Options) (*Simulation, error) {
	diff, err := cfg.Active()
	if err != nil {
		return nil, err
	}
	shop, err := cfg.Shop()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	clock := engine.NewClock()
	sched := engine.NewScheduler(clock)
	queue := event.NewQueue()
	static := scene.NewStatic()
	reg := status.NewRegistry()

	s := &Simulation{
		ID:     uuid.New(),
		Seed:   seed,
		clock:  clock,
		sched:  sched,
		queue:  queue,
		router: event.NewRouter(queue),
		scene:  static,
		layout: scene.BuildRoom(static, rng),
		env: system.Env{
			Sched:  sched,
			Queue:  queue,
			View:   static,
			Board:  system.NewMessageBoard(sched, queue),
			RNG:    rng,
			Status: reg,
		},
		dir:     component.NewDirectory(),
		body:    component.NewBody(),
		inv:     component.NewInventory(),
		prog:    component.NewProgression(),
		session: &component.Session{},

		statTicks:   reg.Counters.Get("engine.ticks"),
		statTasks:   reg.Counters.Get("engine.tasks_run"),
		statSkipped: reg.Counters.Get("engine.tasks_skipped"),
		statLost:    reg.Counters.Get("engine.events_lost"),
	}

	s.movement = system.NewMovementSystem(s.env, s.body)
	s.hostiles = system.NewHostileSystem(s.env, s.dir, s.body, s.inv, s.session, diff, cfg.Progression)
	s.economy = system.NewEconomySystem(s.env, s.prog)
	s.store = system.NewStore(s.env, shop, s.prog, s.inv, s.body)
	s.resolver = system.NewHitResolver(s.env, s.dir, static, s.hostiles, s.economy, cfg.BossKillThreshold)
	s.hands = system.NewAppendageSystem(s.env, s.body, s.inv, static, s.resolver)
	s.puzzles = system.NewPuzzleSystem(s.env, static, s.layout, s.session)
	s.countdown = system.NewCountdownSystem(s.env, s.body, s.inv, s.session, cfg.Countdown)

	s.systems = []engine.System{
		s.hostiles, s.movement, &actionStage{sim: s}, s.puzzles, s.countdown, s.hands, s.economy,
	}
	slices.SortStableFunc(s.systems, func(a, b engine.System) int {
		return a.Priority() - b.Priority()
	})

	for _, sys := range s.systems {
		if h, ok := sys.(event.Handler); ok {
			s.router.Register(h)
		}
	}
	s.router.Register(s)
	if opts.Logger != nil {
		s.router.Register(NewLogHandler(s.ID.String(), opts.Logger))
	}
	for _, h := range opts.Handlers {
		s.router.Register(h)
	}
	// Construction output is not part of any tick
	s.queue.Consume()
	return s, nil
}

// Tick advances the session one fixed step
// No-op while paused or once the session has a result
func (s *Simulation) Tick() {
	if s.session.Over() || !s.clock.Advance() {
		return
	}
	s.queue.SetTick(s.clock.Tick())
	s.damage = s.damage[:0]

	s.sched.RunDue()
	for _, sys := range s.systems {
		sys.Update(parameter.TickSeconds)
	}
	s.router.DispatchAll()

	ran, skipped := s.sched.Stats()
	s.statTicks.Set(int64(s.clock.Tick()))
	s.statTasks.Set(int64(ran))
	s.statSkipped.Set(int64(skipped))
	s.statLost.Set(int64(s.queue.Lost()))
}

// Apply feeds one input action
// Intent and shop actions take effect immediately; world actions resolve during the next tick's interaction stage
func (s *Simulation) Apply(a Action) error {
	if a.Kind == ActionPause {
		s.SetPaused(!s.clock.Paused())
		return nil
	}
	if s.session.Over() {
		return nil
	}
	if a.Kind.deferred() {
		s.pending = append(s.pending, a)
		return nil
	}

	switch a.Kind {
	case ActionMove:
		s.body.Intent.Forward = vmath.Clamp(a.Forward, -1, 1)
		s.body.Intent.Right = vmath.Clamp(a.Right, -1, 1)
	case ActionLook:
		s.body.Yaw = a.Yaw
		s.body.Pitch = vmath.Clamp(a.Pitch, -maxPitch, maxPitch)
	case ActionJump:
		s.body.Intent.Jump = true
	case ActionRun:
		s.body.Intent.Run = a.On
	case ActionShop:
		s.shopOpen = a.On
	case ActionBuy:
		return s.shopResult(s.store.Buy(a.ItemID))
	case ActionEquip:
		return s.shopResult(s.store.Equip(a.ItemID))
	case ActionUse:
		_, err := s.store.Use(a.ItemID)
		return s.shopResult(err)
	case ActionSystem:
		return s.SetSystemEnabled(a.System, a.On)
	default:
		return fmt.Errorf("action %s: unsupported", a.Kind)
	}
	return nil
}

// shopResult surfaces a rejected transaction on the message board
func (s *Simulation) shopResult(err error) error {
	if err != nil {
		s.env.Board.Show(err.Error(), parameter.MessageDuration)
	}
	return err
}

// maxPitch keeps the view just short of vertical
const maxPitch = 1.55

// SetPaused freezes or resumes the session clock
func (s *Simulation) SetPaused(p bool) {
	if s.clock.Paused() == p {
		return
	}
	s.clock.SetPaused(p)
	s.queue.Emit(event.EventPauseToggled, &event.PausePayload{Paused: p})
	s.router.DispatchAll()
}

// SetSystemEnabled routes a toggle to the named system
// A disabled system skips its Update and, for puzzles, ignores interaction
func (s *Simulation) SetSystemEnabled(name string, on bool) error {
	known := slices.ContainsFunc(s.systems, func(sys engine.System) bool {
		_, ok := sys.(event.Handler)
		return ok && sys.Name() == name
	})
	if !known {
		return fmt.Errorf("system %q: unknown", name)
	}
	s.queue.Emit(event.EventSystemToggle, &event.SystemTogglePayload{SystemName: name, Enabled: on})
	s.router.DispatchAll()
	return nil
}

// runActions resolves deferred actions against post-movement positions
func (s *Simulation) runActions() {
	pending := s.pending
	s.pending = nil
	for _, a := range pending {
		if s.session.Over() {
			return
		}
		aim := s.body.Aim()
		switch a.Kind {
		case ActionShoot:
			s.hands.Shoot(a.Hand, aim)
		case ActionRelease:
			s.hands.Release(a.Hand)
		case ActionInteract:
			s.puzzles.Interact(vmath.NewRay(s.body.Position, aim))
		case ActionTileMove:
			s.puzzles.MoveTile(a.Index)
		case ActionTileClose:
			s.puzzles.CloseTile()
		}
	}
}

// EventTypes returns the event types the session itself tracks
func (s *Simulation) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerDamaged,
		event.EventShopOpened,
	}
}

// HandleEvent collects per-tick damage and shop state
func (s *Simulation) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlayerDamaged:
		if p, ok := ev.Payload.(*event.DamagePayload); ok {
			s.damage = append(s.damage, DamageView{Amount: p.Amount, Source: p.Source})
		}
	case event.EventShopOpened:
		s.shopOpen = true
	}
}

// Over reports whether the session has a result
func (s *Simulation) Over() bool {
	return s.session.Over()
}

// Paused reports whether the clock is frozen
func (s *Simulation) Paused() bool {
	return s.clock.Paused()
}

// Elapsed returns simulated time
func (s *Simulation) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

// Scene exposes the static world for rendering
func (s *Simulation) Scene() *scene.Static {
	return s.scene
}

// Layout exposes the room's interactive handles
func (s *Simulation) Layout() scene.Layout {
	return s.layout
}

// Status exposes telemetry
func (s *Simulation) Status() *status.Registry {
	return s.env.Status
}

// Store exposes the shop
func (s *Simulation) Store() *system.Store {
	return s.store
}

// actionStage runs queued world actions between movement and the countdown
type actionStage struct {
	sim *Simulation
}

func (a *actionStage) Name() string      { return "actions" }
func (a *actionStage) Priority() int     { return parameter.PriorityHit }
func (a *actionStage) Init()             { a.sim.pending = nil }
func (a *actionStage) Update(dt float64) { a.sim.runActions() }

var (
	_ engine.Stepper = (*Simulation)(nil)
	_ engine.System  = (*actionStage)(nil)
	_ event.Handler  = (*Simulation)(nil)
)
