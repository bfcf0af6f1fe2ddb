package parameter

import "time"

// Countdown
const (
	// CountdownDuration is the session time limit before the pursuer activates
	CountdownDuration = 300 * time.Second
)

// Pursuer
const (
	// PursuerStepPerTick is the straight-line distance the pursuer covers per tick
	PursuerStepPerTick = 0.1

	// PursuerDamageRadius is the range of the pursuer's damage aura
	PursuerDamageRadius = 5.0

	// PursuerDamagePerTick is the aura damage per tick
	PursuerDamagePerTick = 0.1

	// PursuerCatchRadius ends the session on contact
	PursuerCatchRadius = 2.0

	// PursuerStartY is the height of the pursuer spawn point at the world origin
	PursuerStartY = 1.0
)
