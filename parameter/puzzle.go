package parameter

import "time"

// Interaction
const (
	// InteractRange is the maximum distance of an interaction ray
	InteractRange = 3.0

	// SwitchCount is the number of switches in the ordered switch puzzle
	SwitchCount = 3
)

// Tile Puzzle
const (
	// TileGridSize is the edge length of the sliding tile puzzle
	TileGridSize = 3

	// TileImageCount is the number of images cycled between tile puzzles
	TileImageCount = 3

	// TileCloseDelay is the delay between solving the tile puzzle and opening the shop
	TileCloseDelay = 2 * time.Second
)
