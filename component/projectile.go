package component

import (
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// Projectile is a travelling shot owned by one appendage
type Projectile struct {
	Position  vmath.Vec3
	Velocity  vmath.Vec3
	TimeAlive float64 // Seconds
	Owner     int
	Visual    scene.Handle
}

// Advance integrates position over dt and returns the probe ray for the next step and its length
func (p *Projectile) Advance(dt float64) (vmath.Ray, float64) {
	p.Position = p.Position.Add(p.Velocity.Mul(dt))
	p.TimeAlive += dt
	return vmath.NewRay(p.Position, p.Velocity), p.Velocity.Len() * dt
}

// Expired reports whether the projectile outlived lifetime seconds
func (p *Projectile) Expired(lifetime float64) bool {
	return p.TimeAlive > lifetime
}
