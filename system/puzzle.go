package system

import (
	"errors"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// Player-facing puzzle text
const (
	HintButton     = "Find and activate the red button"
	HintSwitches   = "Activate the three switches in order"
	HintDoor       = "Find the escape door and use the final key"
	HintDoorKey    = "You need the red key to open this door!"
	HintWrongOrder = "Wrong order! Try again."
	EscapeMessage  = "Congratulations! You escaped!"
)

// PuzzleSystem runs the escape gate, its switch sub-puzzle and the level-up tile puzzle
type PuzzleSystem struct {
	env     Env
	geom    scene.Geometry
	layout  scene.Layout
	session *component.Session
	gate    *component.Gate

	tile      *component.TilePuzzle
	tileImage int
	tileToken *engine.Token

	statInteract *status.Counter
	statTiles    *status.Counter
	statCurrent  *status.Counter

	enabled bool
}

// NewPuzzleSystem builds the three-stage gate over the room layout
func NewPuzzleSystem(env Env, geom scene.Geometry, layout scene.Layout, session *component.Session) *PuzzleSystem {
	s := &PuzzleSystem{
		env:     env,
		geom:    geom,
		layout:  layout,
		session: session,

		statInteract: env.Status.Counters.Get("puzzle.interactions"),
		statTiles:    env.Status.Counters.Get("puzzle.tiles_solved"),
		statCurrent:  env.Status.Counters.Get("puzzle.current"),
	}
	s.Init()
	return s
}

// Init rebuilds the gate, hides every key and closes the tile puzzle
func (s *PuzzleSystem) Init() {
	l := s.layout
	s.gate = component.NewGate([]*component.Puzzle{
		{ID: 1, Kind: component.PuzzleButton, Hint: HintButton, Target: l.Button, Reward: l.Keys[1]},
		{ID: 2, Kind: component.PuzzleSwitches, Hint: HintSwitches, Target: l.Switches[0], Reward: l.Keys[2],
			RequiredID: 1, Switches: component.NewSwitchSequence(parameter.SwitchCount)},
		{ID: 3, Kind: component.PuzzleDoor, Hint: HintDoor, Target: l.Door,
			RequiredID: 2, KeyFromID: 2, LockedHint: HintDoorKey},
	})
	for _, p := range s.gate.Puzzles() {
		if p.Reward != scene.NoHandle {
			s.env.View.SetVisible(p.Reward, false)
		}
	}
	s.tileToken.Kill()
	s.tileToken = nil
	s.tile = nil
	s.tileImage = 0
	s.statCurrent.Set(1)
	s.enabled = true
}

// Name returns the system's name
func (s *PuzzleSystem) Name() string {
	return "puzzle"
}

// Priority returns the system's priority
func (s *PuzzleSystem) Priority() int {
	return parameter.PriorityPuzzle
}

// Update has no per-tick work; puzzles advance on interaction and events
func (s *PuzzleSystem) Update(dt float64) {}

// EventTypes returns the event types PuzzleSystem handles
func (s *PuzzleSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLevelUp,
		event.EventSystemToggle,
	}
}

// HandleEvent opens a tile puzzle on level-up and applies toggles addressed to puzzle
func (s *PuzzleSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSystemToggle:
		if p, ok := ev.Payload.(*event.SystemTogglePayload); ok && p.SystemName == s.Name() {
			s.enabled = p.Enabled
		}
	case event.EventLevelUp:
		s.StartTile()
	}
}

// Gate exposes the puzzle chain for snapshots
func (s *PuzzleSystem) Gate() *component.Gate {
	return s.gate
}

// Interact casts the interaction ray and routes the nearest static hit within reach
// Returns the handle that was hit, NoHandle when nothing is in reach
func (s *PuzzleSystem) Interact(ray vmath.Ray) scene.Handle {
	hits := s.geom.RayIntersect(ray, parameter.InteractRange)
	if len(hits) == 0 || !s.enabled {
		return scene.NoHandle
	}
	h := hits[0].Handle
	s.statInteract.Inc()
	switch h {
	case s.layout.Button:
		s.Activate(1)
	case s.layout.Door:
		s.Activate(3)
	case s.layout.TileWall:
		s.StartTile()
	default:
		for i, sw := range s.layout.Switches {
			if h == sw {
				s.PressSwitch(i)
				break
			}
		}
	}
	return h
}

// Activate attempts puzzle id; rejections surface their hint as a transient message
// Switch puzzles only solve through PressSwitch
func (s *PuzzleSystem) Activate(id int) error {
	if s.session.Over() {
		return nil
	}
	if p := s.gate.Puzzle(id); p != nil && p.Switches != nil && p.Switches.Phase() != component.SwitchSolved {
		if err := s.gate.Check(id); err != nil {
			return s.reject(err)
		}
		return s.reject(&component.TransitionError{PuzzleID: id, Hint: HintSwitches})
	}
	p, last, err := s.gate.Activate(id)
	if err != nil {
		return s.reject(err)
	}
	s.solved(p, last)
	return nil
}

// PressSwitch feeds switch index into the current switch puzzle
func (s *PuzzleSystem) PressSwitch(index int) error {
	cur := s.gate.Current()
	if cur == nil || cur.Switches == nil {
		return s.reject(s.gate.Check(2))
	}
	if err := s.gate.Check(cur.ID); err != nil {
		return s.reject(err)
	}

	switch cur.Switches.Press(index) {
	case component.SwitchAdvanced:
		s.env.Queue.Emit(event.EventSwitchActivated, &event.SwitchPayload{Index: index, Progress: cur.Switches.Progress()})
	case component.SwitchReset:
		s.env.Queue.Emit(event.EventSwitchReset, &event.SwitchPayload{Index: index})
		s.env.Board.Show(HintWrongOrder, parameter.MessageDuration)
	case component.SwitchCompleted:
		s.env.Queue.Emit(event.EventSwitchActivated, &event.SwitchPayload{Index: index, Progress: cur.Switches.Progress()})
		p, last, err := s.gate.Activate(cur.ID)
		if err != nil {
			return s.reject(err)
		}
		s.solved(p, last)
	}
	return nil
}

func (s *PuzzleSystem) reject(err error) error {
	var te *component.TransitionError
	if errors.As(err, &te) {
		s.env.Queue.Emit(event.EventPuzzleBlocked, &event.PuzzlePayload{ID: te.PuzzleID, Hint: te.Hint})
		s.env.Board.Show(te.Hint, parameter.MessageDuration)
	}
	return err
}

func (s *PuzzleSystem) solved(p *component.Puzzle, last bool) {
	if p.Reward != scene.NoHandle {
		s.env.View.SetVisible(p.Reward, true)
	}
	s.env.Queue.Emit(event.EventPuzzleSolved, &event.PuzzlePayload{ID: p.ID, Hint: p.Hint})
	if last {
		endSession(s.env, s.session, component.OutcomeWin, EscapeMessage)
		return
	}
	s.statCurrent.Set(int64(s.gate.Current().ID))
}

// Target returns the world position the guide arrow points at, false once escaped
func (s *PuzzleSystem) Target() (vmath.Vec3, bool) {
	cur := s.gate.Current()
	if cur == nil {
		return vmath.Vec3{}, false
	}
	pos, ok := s.layout.Targets[cur.ID]
	return pos, ok
}

// Tile returns the open tile puzzle, nil when closed
func (s *PuzzleSystem) Tile() *component.TilePuzzle {
	return s.tile
}

// StartTile opens a freshly shuffled tile puzzle unless one is already open
func (s *PuzzleSystem) StartTile() bool {
	if s.tile != nil || s.session.Over() {
		return false
	}
	s.tile = component.NewTilePuzzle(parameter.TileGridSize, s.env.RNG)
	s.tile.Image = s.tileImage
	s.env.Queue.Emit(event.EventTilePuzzleStarted, &event.TilePayload{Image: s.tileImage})
	return true
}

// MoveTile slides tile index of the open puzzle; a solved board closes after a delay and opens the shop
func (s *PuzzleSystem) MoveTile(index int) bool {
	t := s.tile
	if t == nil || s.tileToken != nil || !t.Move(index) {
		return false
	}
	if !t.IsSolved() {
		return true
	}
	s.statTiles.Inc()
	s.env.Queue.Emit(event.EventTilePuzzleSolved, &event.TilePayload{Image: t.Image})
	tok := engine.NewToken()
	s.tileToken = tok
	s.env.Sched.After(parameter.TileCloseDelay, tok, func() {
		s.closeTile()
		s.tileImage = (s.tileImage + 1) % parameter.TileImageCount
		s.env.Queue.Emit(event.EventShopOpened, nil)
	})
	return true
}

// CloseTile abandons the open tile puzzle without opening the shop
func (s *PuzzleSystem) CloseTile() {
	s.closeTile()
}

func (s *PuzzleSystem) closeTile() {
	s.tileToken.Kill()
	s.tileToken = nil
	s.tile = nil
}

var (
	_ engine.System = (*PuzzleSystem)(nil)
	_ event.Handler = (*PuzzleSystem)(nil)
)
