package engine

// System is a per-tick simulation stage
type System interface {
	// Name identifies the system in logs and telemetry
	Name() string

	// Priority orders systems within a tick; lower runs first
	Priority() int

	// Init resets session state
	Init()

	// Update advances the system by dt seconds
	Update(dt float64)
}
