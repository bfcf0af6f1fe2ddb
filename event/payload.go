package event

import "github.com/mittubose/Grabby-Hand-rat-killer/vmath"

// HostilePayload describes a hostile at the moment of the event
type HostilePayload struct {
	ID       uint32
	Boss     bool
	Position vmath.Vec3
	Health   int
}

// KillPayload carries the rewards granted for a kill
type KillPayload struct {
	ID    uint32
	Boss  bool
	Score int
	Coins int
	XP    int
	Kills int
}

// DamagePayload carries damage applied to the player and its source
type DamagePayload struct {
	Amount float64
	Source vmath.Vec3
	Health float64
}

// ShotPayload describes a launched projectile
type ShotPayload struct {
	Hand   int
	Origin vmath.Vec3
	Dir    vmath.Vec3
}

// GrapplePayload describes a grapple attach or release
type GrapplePayload struct {
	Hand       int
	Anchor     vmath.Vec3
	RopeLength float64
}

// LevelUpPayload carries the new level
type LevelUpPayload struct {
	Level    int
	XPToNext int
}

// TilePayload identifies the tile puzzle image in play
type TilePayload struct {
	Image int
}

// ItemPayload identifies a catalog item
type ItemPayload struct {
	ItemID string
	Kind   string
}

// PuzzlePayload identifies a gate puzzle and the hint shown to the player
type PuzzlePayload struct {
	ID   int
	Hint string
}

// SwitchPayload carries the switch index and sequence progress
type SwitchPayload struct {
	Index    int
	Progress int
}

// MessagePayload is a transient instruction
type MessagePayload struct {
	Text string
}

// GameOverPayload is the terminal session outcome
type GameOverPayload struct {
	Win     bool
	Message string
}

// PausePayload carries the pause state after a toggle
type PausePayload struct {
	Paused bool
}

// SystemTogglePayload names a system and its requested state
type SystemTogglePayload struct {
	SystemName string
	Enabled    bool
}
