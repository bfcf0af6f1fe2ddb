package component

import "github.com/mittubose/Grabby-Hand-rat-killer/vmath"

// Grapple is the rope state of one appendage
type Grapple struct {
	Attached      bool
	Anchor        *vmath.Vec3
	RopeLength    float64
	MaxRopeLength float64
}

// Attach latches onto anchor; the rope length is the current distance capped at MaxRopeLength
func (g *Grapple) Attach(anchor vmath.Vec3, distance float64) {
	a := anchor
	g.Anchor = &a
	g.Attached = true
	g.RopeLength = min(distance, g.MaxRopeLength)
}

// Detach clears the rope
func (g *Grapple) Detach() {
	g.Attached = false
	g.Anchor = nil
	g.RopeLength = 0
}
