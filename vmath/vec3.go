package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the world-space vector used across the simulation
type Vec3 = mgl64.Vec3

var (
	// Up is the world up axis
	Up = Vec3{0, 1, 0}

	// Forward is the view direction at zero yaw and pitch
	Forward = Vec3{0, 0, -1}
)

// SafeNormalize returns the unit vector of v, or zero for degenerate input
func SafeNormalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// Distance returns the euclidean distance between a and b
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// Flatten zeroes the vertical component
func Flatten(v Vec3) Vec3 {
	return Vec3{v[0], 0, v[2]}
}

// Direction builds a unit view vector from yaw (around y, 0 faces -z) and pitch
func Direction(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{-math.Sin(yaw) * cp, math.Sin(pitch), -math.Cos(yaw) * cp}
}

// RightOf returns the horizontal right vector for a view direction
func RightOf(dir Vec3) Vec3 {
	r := SafeNormalize(dir.Cross(Up))
	if r == (Vec3{}) {
		return Vec3{1, 0, 0}
	}
	return r
}

// YawTo returns the yaw that faces from a toward b on the horizontal plane
func YawTo(from, to Vec3) float64 {
	d := to.Sub(from)
	return math.Atan2(-d[0], -d[2])
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
