package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

func visible(t *testing.T, s *scene.Static, h scene.Handle) bool {
	t.Helper()
	o, ok := s.Object(h)
	require.True(t, ok)
	return o.Visible
}

func TestEscapeSequence(t *testing.T) {
	f := newFixture(t)
	assert.False(t, visible(t, f.scene, f.layout.Keys[1]))

	require.NoError(t, f.puzzles.Activate(1))
	assert.True(t, visible(t, f.scene, f.layout.Keys[1]))
	assert.Equal(t, component.PuzzleInProgress, f.puzzles.Gate().State(2))

	for i := range parameter.SwitchCount {
		require.NoError(t, f.puzzles.PressSwitch(i))
	}
	assert.True(t, visible(t, f.scene, f.layout.Keys[2]))
	assert.Equal(t, component.PuzzleSolved, f.puzzles.Gate().State(2))

	require.NoError(t, f.puzzles.Activate(3))
	assert.Equal(t, component.OutcomeWin, f.session.Outcome)
	assert.Equal(t, EscapeMessage, f.session.Message)

	evs := f.events()
	assert.Equal(t, 3, countEvents(evs, event.EventPuzzleSolved))
	assert.Equal(t, 1, countEvents(evs, event.EventGameOver))
	_, ok := f.puzzles.Target()
	assert.False(t, ok)
}

func TestActivateOutOfOrder(t *testing.T) {
	f := newFixture(t)
	err := f.puzzles.Activate(2)
	require.ErrorIs(t, err, component.ErrInvalidTransition)
	assert.Equal(t, component.HintPrevious, f.env.Board.Text())
	assert.Equal(t, []bool{false, false, false}, f.puzzles.Gate().SolvedFlags())
	assert.Equal(t, 1, countEvents(f.events(), event.EventPuzzleBlocked))

	f.stepFor(parameter.MessageDuration.Seconds())
	assert.Empty(t, f.env.Board.Text())
}

func TestDoorWithoutKey(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.puzzles.Activate(1))
	err := f.puzzles.Activate(3)
	require.ErrorIs(t, err, component.ErrInvalidTransition)
	assert.Equal(t, HintDoorKey, f.env.Board.Text())
	assert.False(t, f.session.Over())
}

func TestSwitchPuzzleNeedsSwitches(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.puzzles.Activate(1))
	require.Error(t, f.puzzles.Activate(2))
	assert.False(t, f.puzzles.Gate().Puzzle(2).Solved)
}

func TestSwitchesBeforeButton(t *testing.T) {
	f := newFixture(t)
	err := f.puzzles.PressSwitch(0)
	require.ErrorIs(t, err, component.ErrInvalidTransition)
	assert.Equal(t, component.HintPrevious, f.env.Board.Text())
}

func TestWrongSwitchOrderResets(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.puzzles.Activate(1))
	sw := f.puzzles.Gate().Puzzle(2).Switches

	require.NoError(t, f.puzzles.PressSwitch(0))
	require.NoError(t, f.puzzles.PressSwitch(2))
	assert.Zero(t, sw.Progress())
	assert.False(t, sw.Pressed(0))
	assert.Equal(t, HintWrongOrder, f.env.Board.Text())
	assert.Equal(t, 1, countEvents(f.events(), event.EventSwitchReset))

	for _, i := range []int{0, 1, 2} {
		require.NoError(t, f.puzzles.PressSwitch(i))
	}
	assert.True(t, f.puzzles.Gate().Puzzle(2).Solved)
}

func TestInteractRoutesByHandle(t *testing.T) {
	f := newFixture(t)
	down := vmath.Vec3{0, -1, 0}

	h := f.puzzles.Interact(vmath.NewRay(vmath.Vec3{15, 3, 15}, down))
	assert.Equal(t, f.layout.Button, h)
	assert.True(t, f.puzzles.Gate().Puzzle(1).Solved)

	for i := range parameter.SwitchCount {
		origin := vmath.Vec3{-15 + float64(i)*2, 3, 13}
		assert.Equal(t, f.layout.Switches[i], f.puzzles.Interact(vmath.NewRay(origin, vmath.Vec3{0, 0, 1})))
	}
	assert.True(t, f.puzzles.Gate().Puzzle(2).Solved)

	f.puzzles.Interact(vmath.NewRay(vmath.Vec3{15, 1.5, -13}, vmath.Forward))
	assert.Equal(t, component.OutcomeWin, f.session.Outcome)
}

func TestInteractOutOfReach(t *testing.T) {
	f := newFixture(t)
	h := f.puzzles.Interact(vmath.NewRay(vmath.Vec3{15, 5, 15}, vmath.Vec3{0, -1, 0}))
	assert.Equal(t, scene.NoHandle, h)
	assert.False(t, f.puzzles.Gate().Puzzle(1).Solved)
}

func TestPuzzleTarget(t *testing.T) {
	f := newFixture(t)
	pos, ok := f.puzzles.Target()
	require.True(t, ok)
	assert.Equal(t, f.layout.Targets[1], pos)

	require.NoError(t, f.puzzles.Activate(1))
	pos, _ = f.puzzles.Target()
	assert.Equal(t, f.layout.Targets[2], pos)
}

func TestTilePuzzleFlow(t *testing.T) {
	f := newFixture(t)
	f.puzzles.HandleEvent(event.GameEvent{Type: event.EventLevelUp, Payload: &event.LevelUpPayload{Level: 2}})
	tile := f.puzzles.Tile()
	require.NotNil(t, tile)
	assert.True(t, tile.IsSolvable())
	assert.False(t, f.puzzles.StartTile(), "already open")

	tile.Tiles = []int{0, 1, 2, 3, 4, 5, 6, 8, 7}
	assert.False(t, f.puzzles.MoveTile(0), "not adjacent to the blank")
	require.True(t, f.puzzles.MoveTile(8))
	assert.True(t, tile.IsSolved())
	assert.False(t, f.puzzles.MoveTile(7), "locked while closing")

	evs := f.events()
	assert.Equal(t, 1, countEvents(evs, event.EventTilePuzzleSolved))
	assert.Zero(t, countEvents(evs, event.EventShopOpened))

	f.stepFor(parameter.TileCloseDelay.Seconds())
	assert.Nil(t, f.puzzles.Tile())
	assert.Equal(t, 1, countEvents(f.events(), event.EventShopOpened))

	require.True(t, f.puzzles.StartTile())
	assert.Equal(t, 1, f.puzzles.Tile().Image, "image cycles")
}

func TestTileWallOpensPuzzle(t *testing.T) {
	f := newFixture(t)
	h := f.puzzles.Interact(vmath.NewRay(vmath.Vec3{-15, 3, -13}, vmath.Forward))
	assert.Equal(t, f.layout.TileWall, h)
	assert.NotNil(t, f.puzzles.Tile())

	f.puzzles.CloseTile()
	assert.Nil(t, f.puzzles.Tile())
}
