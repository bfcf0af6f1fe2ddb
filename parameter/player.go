package parameter

import "time"

// Player Body
const (
	// PlayerMaxHealth is the health cap
	PlayerMaxHealth = 100.0

	// PlayerEyeHeight is the ground clamp for the eye position
	PlayerEyeHeight = 2.0

	// WorldSize is the edge of the square arena
	WorldSize = 50.0

	// WorldBound is the absolute x/z limit for the player
	WorldBound = WorldSize/2 - 1
)

// Movement
const (
	WalkSpeed = 8.0
	RunSpeed  = 12.0

	// GroundAcceleration is the per-second blend rate toward the target velocity on ground
	GroundAcceleration = 15.0

	// AirAcceleration is the per-second blend rate toward the target velocity in the air
	AirAcceleration = 3.0

	// WalkFriction is the grounded horizontal damping while walking
	WalkFriction = 0.85

	// RunFriction is the grounded horizontal damping while running
	RunFriction = 0.7

	Gravity      = 30.0
	JumpVelocity = 15.0
)

// ForceResponse converts accumulated force into velocity change per second
const ForceResponse = 10.0

// JumpCooldown is the minimum time between two jumps
const JumpCooldown = 500 * time.Millisecond
