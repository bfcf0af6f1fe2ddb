package component

import (
	"errors"
	"fmt"

	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
)

// ErrInvalidTransition is wrapped by every rejected puzzle activation
var ErrInvalidTransition = errors.New("invalid puzzle transition")

// TransitionError explains a rejected activation; Hint is shown to the player
type TransitionError struct {
	PuzzleID int
	Hint     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("puzzle %d: %s", e.PuzzleID, e.Hint)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PuzzleKind selects how a gate puzzle is activated
type PuzzleKind int

const (
	PuzzleButton PuzzleKind = iota
	PuzzleSwitches
	PuzzleDoor
)

// PuzzleState is the per-puzzle progression state
type PuzzleState int

const (
	PuzzleNotReached PuzzleState = iota
	PuzzleInProgress
	PuzzleSolved
)

func (s PuzzleState) String() string {
	switch s {
	case PuzzleInProgress:
		return "in-progress"
	case PuzzleSolved:
		return "solved"
	default:
		return "not-reached"
	}
}

// Puzzle is one stage of the escape sequence
type Puzzle struct {
	ID         int
	Kind       PuzzleKind
	Hint       string
	Target     scene.Handle
	Reward     scene.Handle // Key revealed on solve, NoHandle if none
	RequiredID int          // Must be solved before this one, 0 if none
	KeyFromID  int          // Door only: puzzle whose reward key opens it
	LockedHint string       // Shown when the door key is missing
	Solved     bool

	Switches *SwitchSequence // Set for PuzzleSwitches
}

// Gate runs the ordered puzzle chain
type Gate struct {
	puzzles []*Puzzle
	current int // Index into puzzles; len(puzzles) once escaped
}

// Hints shared by every gate
const (
	HintPrevious = "You need to solve the previous puzzle first!"
	HintSolved   = "Already solved"
	HintEscaped  = "You already escaped"
)

// NewGate orders puzzles by slice position; ids must be 1..N
func NewGate(puzzles []*Puzzle) *Gate {
	return &Gate{puzzles: puzzles}
}

// Current returns the puzzle in progress, nil once every puzzle is solved
func (g *Gate) Current() *Puzzle {
	if g.current >= len(g.puzzles) {
		return nil
	}
	return g.puzzles[g.current]
}

// Puzzle returns the puzzle with id
func (g *Gate) Puzzle(id int) *Puzzle {
	if id < 1 || id > len(g.puzzles) {
		return nil
	}
	return g.puzzles[id-1]
}

// Puzzles returns the chain in order
func (g *Gate) Puzzles() []*Puzzle {
	return g.puzzles
}

// Escaped reports whether the last puzzle is solved
func (g *Gate) Escaped() bool {
	return g.current >= len(g.puzzles)
}

// State returns the progression state of puzzle id
func (g *Gate) State(id int) PuzzleState {
	p := g.Puzzle(id)
	switch {
	case p == nil:
		return PuzzleNotReached
	case p.Solved:
		return PuzzleSolved
	case id-1 == g.current:
		return PuzzleInProgress
	default:
		return PuzzleNotReached
	}
}

// Check validates that puzzle id may be worked on now
// A locked door reports its missing key ahead of ordering
func (g *Gate) Check(id int) error {
	p := g.Puzzle(id)
	if p == nil {
		return &TransitionError{PuzzleID: id, Hint: "unknown puzzle"}
	}
	if g.Escaped() {
		return &TransitionError{PuzzleID: id, Hint: HintEscaped}
	}
	if p.Solved {
		return &TransitionError{PuzzleID: id, Hint: HintSolved}
	}
	if p.Kind == PuzzleDoor && p.KeyFromID != 0 && !g.solved(p.KeyFromID) {
		return &TransitionError{PuzzleID: id, Hint: p.LockedHint}
	}
	if id-1 != g.current {
		return &TransitionError{PuzzleID: id, Hint: HintPrevious}
	}
	if p.RequiredID != 0 && !g.solved(p.RequiredID) {
		return &TransitionError{PuzzleID: id, Hint: HintPrevious}
	}
	return nil
}

// Activate solves puzzle id if the gate allows it
// Returns the solved puzzle and whether it was the last one
func (g *Gate) Activate(id int) (*Puzzle, bool, error) {
	if err := g.Check(id); err != nil {
		return nil, false, err
	}
	p := g.puzzles[g.current]
	p.Solved = true
	g.current++
	return p, g.Escaped(), nil
}

// SolvedFlags returns solved state in puzzle order
func (g *Gate) SolvedFlags() []bool {
	out := make([]bool, len(g.puzzles))
	for i, p := range g.puzzles {
		out[i] = p.Solved
	}
	return out
}

func (g *Gate) solved(id int) bool {
	p := g.Puzzle(id)
	return p != nil && p.Solved
}
