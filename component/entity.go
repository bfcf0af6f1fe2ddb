package component

// EntityID identifies a hostile within a session; never reused
type EntityID uint32

// HostileKind distinguishes the hostile variants
type HostileKind int

const (
	HostileRegular HostileKind = iota
	HostileBoss
)

func (k HostileKind) String() string {
	if k == HostileBoss {
		return "boss"
	}
	return "regular"
}

// HostileState is the hostile lifecycle
type HostileState int

const (
	HostileActive HostileState = iota
	HostileDying
	HostileRemoved
)

func (s HostileState) String() string {
	switch s {
	case HostileActive:
		return "active"
	case HostileDying:
		return "dying"
	default:
		return "removed"
	}
}
