package component

import "math/rand"

// TilePuzzle is an N×N sliding puzzle; tile value N²-1 is the blank
type TilePuzzle struct {
	Size  int
	Tiles []int
	Image int
	Moves int
}

// NewTilePuzzle shuffles a board and applies the single-swap parity fix when needed
func NewTilePuzzle(size int, rng *rand.Rand) *TilePuzzle {
	n := size * size
	tiles := make([]int, n)
	for i := range tiles {
		tiles[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	t := &TilePuzzle{Size: size, Tiles: tiles}
	if !t.IsSolvable() {
		t.swapLeadingTiles()
	}
	return t
}

// swapLeadingTiles exchanges the first two non-blank tiles once, without re-checking parity
func (t *TilePuzzle) swapLeadingTiles() {
	blank := t.Blank()
	first := -1
	for i, v := range t.Tiles {
		if v == blank {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		t.Tiles[first], t.Tiles[i] = t.Tiles[i], t.Tiles[first]
		return
	}
}

// Blank returns the blank tile value
func (t *TilePuzzle) Blank() int {
	return t.Size*t.Size - 1
}

// Inversions counts out-of-order pairs ignoring the blank
func (t *TilePuzzle) Inversions() int {
	blank := t.Blank()
	inv := 0
	for i := 0; i < len(t.Tiles); i++ {
		if t.Tiles[i] == blank {
			continue
		}
		for j := i + 1; j < len(t.Tiles); j++ {
			if t.Tiles[j] != blank && t.Tiles[i] > t.Tiles[j] {
				inv++
			}
		}
	}
	return inv
}

// BlankIndex returns the board position of the blank
func (t *TilePuzzle) BlankIndex() int {
	blank := t.Blank()
	for i, v := range t.Tiles {
		if v == blank {
			return i
		}
	}
	return -1
}

// IsSolvable applies the inversion parity rule
// Odd sizes need even inversions; even sizes need inversions plus blank row even
func (t *TilePuzzle) IsSolvable() bool {
	inv := t.Inversions()
	if t.Size%2 == 1 {
		return inv%2 == 0
	}
	row := t.BlankIndex() / t.Size
	return (inv+row)%2 == 0
}

// CanMove reports whether the tile at index is orthogonally adjacent to the blank
func (t *TilePuzzle) CanMove(index int) bool {
	if index < 0 || index >= len(t.Tiles) {
		return false
	}
	b := t.BlankIndex()
	if index/t.Size == b/t.Size && (index-b == 1 || b-index == 1) {
		return true
	}
	return index-b == t.Size || b-index == t.Size
}

// Move slides the tile at index into the blank; illegal moves are ignored
func (t *TilePuzzle) Move(index int) bool {
	if !t.CanMove(index) {
		return false
	}
	b := t.BlankIndex()
	t.Tiles[index], t.Tiles[b] = t.Tiles[b], t.Tiles[index]
	t.Moves++
	return true
}

// IsSolved reports whether every tile sits at its own index
func (t *TilePuzzle) IsSolved() bool {
	for i, v := range t.Tiles {
		if v != i {
			return false
		}
	}
	return true
}
