package component

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileGeneratorAlwaysPassesParity(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		tp := NewTilePuzzle(3, rand.New(rand.NewSource(seed)))
		assert.True(t, tp.IsSolvable(), "seed %d: %v", seed, tp.Tiles)
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, tp.Tiles)
	}
}

func TestTileInversionsSkipBlank(t *testing.T) {
	tp := &TilePuzzle{Size: 3, Tiles: []int{8, 1, 0, 2, 3, 4, 5, 6, 7}}
	assert.Equal(t, 1, tp.Inversions())
	assert.False(t, tp.IsSolvable())

	tp.swapLeadingTiles()
	assert.Equal(t, []int{8, 0, 1, 2, 3, 4, 5, 6, 7}, tp.Tiles)
	assert.True(t, tp.IsSolvable())
}

// The even-size rule counts the blank row from the top, so a solved 4×4
// board is reported unsolvable; the generator does not re-check after its swap
func TestEvenBoardParityRuleRejectsSolvedBoard(t *testing.T) {
	tp := &TilePuzzle{Size: 4, Tiles: make([]int, 16)}
	for i := range tp.Tiles {
		tp.Tiles[i] = i
	}
	assert.True(t, tp.IsSolved())
	assert.False(t, tp.IsSolvable())
}

func TestTileMoves(t *testing.T) {
	// 0 1 2
	// 3 8 4
	// 5 6 7
	tp := &TilePuzzle{Size: 3, Tiles: []int{0, 1, 2, 3, 8, 4, 5, 6, 7}}

	tests := []struct {
		index int
		legal bool
	}{
		{1, true},
		{3, true},
		{5, true},
		{7, true},
		{0, false},
		{2, false},
		{8, false},
		{4, false},
		{-1, false},
		{9, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.legal, tp.CanMove(tt.index), "index %d", tt.index)
	}

	// Same-row adjacency must not wrap across rows
	wrap := &TilePuzzle{Size: 3, Tiles: []int{0, 1, 2, 8, 3, 4, 5, 6, 7}}
	assert.False(t, wrap.CanMove(2))
}

func TestTileSolveSequence(t *testing.T) {
	tp := &TilePuzzle{Size: 3, Tiles: []int{0, 1, 2, 3, 4, 5, 6, 8, 7}}
	assert.False(t, tp.IsSolved())
	assert.False(t, tp.Move(0))
	assert.True(t, tp.Move(8))
	assert.True(t, tp.IsSolved())
	assert.Equal(t, 1, tp.Moves)
}
