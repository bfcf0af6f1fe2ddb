// Package scene defines the boundary between the simulation and whatever draws it
package scene

import "github.com/mittubose/Grabby-Hand-rat-killer/vmath"

// Handle identifies a visual or a piece of static geometry
// Zero is never issued
type Handle uint32

// NoHandle is the absent handle
const NoHandle Handle = 0

// VisualKind selects what a presentation layer draws for a handle
type VisualKind int

const (
	VisualRegular VisualKind = iota
	VisualBoss
	VisualBurst
	VisualProjectile
	VisualPursuer
	VisualKey
	VisualButton
	VisualSwitch
	VisualDoor
	VisualTileWall
	VisualWall
	VisualPillar
	VisualPlatform
)

var visualNames = [...]string{
	VisualRegular:    "regular",
	VisualBoss:       "boss",
	VisualBurst:      "burst",
	VisualProjectile: "projectile",
	VisualPursuer:    "pursuer",
	VisualKey:        "key",
	VisualButton:     "button",
	VisualSwitch:     "switch",
	VisualDoor:       "door",
	VisualTileWall:   "tile-wall",
	VisualWall:       "wall",
	VisualPillar:     "pillar",
	VisualPlatform:   "platform",
}

func (k VisualKind) String() string {
	if int(k) < len(visualNames) {
		return visualNames[k]
	}
	return "unknown"
}

// Intersection is one ray hit against static geometry
type Intersection struct {
	Handle   Handle
	Distance float64
	Point    vmath.Vec3
}

// Presentation receives visual lifecycle calls from the simulation
// Implementations must tolerate RemoveVisual on unknown handles
type Presentation interface {
	CreateVisual(kind VisualKind, pos vmath.Vec3) Handle
	MoveVisual(h Handle, pos vmath.Vec3)
	SetVisible(h Handle, visible bool)
	RemoveVisual(h Handle)
}

// Geometry answers ray queries against static level geometry
type Geometry interface {
	// RayIntersect returns hits within maxDist ordered by distance
	RayIntersect(r vmath.Ray, maxDist float64) []Intersection

	// Grappable reports whether an appendage may attach to h
	Grappable(h Handle) bool
}
