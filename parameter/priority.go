package parameter

// System Execution Priorities (lower runs first)
// Order mirrors the tick contract: hostiles, player, interaction, countdown, appendages
const (
	PriorityHostile   = 10
	PriorityMovement  = 20
	PriorityHit       = 30 // Queued shots and interactions resolve against post-movement positions
	PriorityPuzzle    = 35
	PriorityCountdown = 40
	PriorityAppendage = 50
	PriorityEconomy   = 60
)
