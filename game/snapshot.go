package game

import (
	"maps"
	"slices"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// HostileView is the per-tick state of one hostile
type HostileView struct {
	ID            uint32
	Kind          component.HostileKind
	Position      vmath.Vec3
	Yaw           float64
	Scale         float64
	HealthPercent float64
	Dying         bool
	Removable     bool
}

// PuzzleView is the gate state and the guide target
type PuzzleView struct {
	CurrentID       int // 0 once escaped
	Hint            string
	Solved          []bool
	SwitchProgress  int
	SwitchPressed   [parameter.SwitchCount]bool
	SwitchPositions [parameter.SwitchCount]vmath.Vec3
	Target          vmath.Vec3
	HasTarget       bool
}

// PlayerView is the player's body, progression and equipment
type PlayerView struct {
	Position  vmath.Vec3
	Yaw       float64
	Pitch     float64
	Health    float64
	Grounded  bool
	Score     int
	Coins     int
	XP        int
	XPToNext  int
	Level     int
	Kills     int
	Weapon    string
	Armor     string
	Defense   float64
	Potions   map[string]int
	Grappling [parameter.HandCount]bool
	Anchors   [parameter.HandCount]vmath.Vec3
}

// CountdownView is the timer and pursuer
type CountdownView struct {
	Remaining       int
	PursuerActive   bool
	PursuerPosition vmath.Vec3
}

// TileView is the open sliding puzzle
type TileView struct {
	Size   int
	Tiles  []int
	Image  int
	Moves  int
	Solved bool
}

// DamageView records one hit on the player for the direction indicator
type DamageView struct {
	Amount float64
	Source vmath.Vec3
}

// Result is the terminal outcome
type Result struct {
	Outcome component.Outcome
	Message string
}

// Snapshot is the read-only state published after every tick
type Snapshot struct {
	Tick        uint64
	Paused      bool
	Hostiles    []HostileView
	Projectiles []vmath.Vec3
	Puzzle      PuzzleView
	Player      PlayerView
	Countdown   CountdownView
	Tile        *TileView // nil when closed
	Message     string
	Damage      []DamageView // This tick only
	ShopOpen    bool
	Result      Result
}

// Snapshot publishes the current state; slices are copies
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.clock.Tick(),
		Paused:   s.clock.Paused(),
		Message:  s.env.Board.Text(),
		Damage:   slices.Clone(s.damage),
		ShopOpen: s.shopOpen,
		Result:   Result{Outcome: s.session.Outcome, Message: s.session.Message},
	}

	for _, h := range s.dir.All() {
		snap.Hostiles = append(snap.Hostiles, HostileView{
			ID:            uint32(h.ID),
			Kind:          h.Kind,
			Position:      h.Position,
			Yaw:           h.Yaw,
			Scale:         h.Scale,
			HealthPercent: h.HealthPercent(),
			Dying:         !h.IsAlive(),
			Removable:     h.IsRemovable(),
		})
	}

	for id := range parameter.HandCount {
		hand := s.hands.Hand(id)
		for _, p := range hand.Projectiles {
			snap.Projectiles = append(snap.Projectiles, p.Position)
		}
		if hand.Grapple.Attached && hand.Grapple.Anchor != nil {
			snap.Player.Grappling[id] = true
			snap.Player.Anchors[id] = *hand.Grapple.Anchor
		}
	}

	gate := s.puzzles.Gate()
	for _, p := range gate.Puzzles() {
		snap.Puzzle.Solved = append(snap.Puzzle.Solved, p.Solved)
		if p.Switches != nil {
			snap.Puzzle.SwitchProgress = p.Switches.Progress()
			for i := range snap.Puzzle.SwitchPressed {
				snap.Puzzle.SwitchPressed[i] = p.Switches.Pressed(i)
			}
		}
	}
	for i, h := range s.layout.Switches {
		if o, ok := s.scene.Object(h); ok {
			snap.Puzzle.SwitchPositions[i] = o.Position
		}
	}
	if cur := gate.Current(); cur != nil {
		snap.Puzzle.CurrentID = cur.ID
		snap.Puzzle.Hint = cur.Hint
	}
	snap.Puzzle.Target, snap.Puzzle.HasTarget = s.puzzles.Target()

	b, prog, inv := s.body, s.prog, s.inv
	snap.Player.Position = b.Position
	snap.Player.Yaw = b.Yaw
	snap.Player.Pitch = b.Pitch
	snap.Player.Health = b.Health
	snap.Player.Grounded = b.Grounded
	snap.Player.Score = prog.Score
	snap.Player.Coins = prog.Coins
	snap.Player.XP = prog.XP
	snap.Player.XPToNext = prog.XPToNext
	snap.Player.Level = prog.Level
	snap.Player.Kills = prog.Kills
	snap.Player.Weapon = inv.Weapon
	snap.Player.Armor = inv.Armor
	snap.Player.Defense = inv.Defense
	snap.Player.Potions = maps.Clone(inv.Quantities)

	cd := s.countdown.Countdown()
	pur := s.countdown.Pursuer()
	snap.Countdown = CountdownView{
		Remaining:       cd.Remaining,
		PursuerActive:   pur.Active,
		PursuerPosition: pur.Position,
	}

	if t := s.puzzles.Tile(); t != nil {
		snap.Tile = &TileView{
			Size:   t.Size,
			Tiles:  slices.Clone(t.Tiles),
			Image:  t.Image,
			Moves:  t.Moves,
			Solved: t.IsSolved(),
		}
	}
	return snap
}
