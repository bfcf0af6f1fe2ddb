package parameter

import "time"

// Simulation Timing
const (
	// TickInterval is the fixed simulation step
	TickInterval = 16 * time.Millisecond

	// TickSeconds is TickInterval expressed in seconds, used as dt by every system
	TickSeconds = 0.016

	// MaxCatchUpTicks bounds how many ticks a runner executes for one wall-clock advance
	MaxCatchUpTicks = 8
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// MessageDuration is how long a transient instruction stays visible
const MessageDuration = 3 * time.Second

// LevelUpMessageDuration is how long the level-up banner stays visible
const LevelUpMessageDuration = 2 * time.Second
