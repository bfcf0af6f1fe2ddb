package vmath

import "math"

// Ray is a half-line from Origin along the unit vector Dir
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay normalizes dir; a zero direction yields a ray that never intersects
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: SafeNormalize(dir)}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Valid reports whether the ray has a usable direction
func (r Ray) Valid() bool {
	return r.Dir != (Vec3{})
}

// AABB is an axis-aligned box
type AABB struct {
	Min, Max Vec3
}

// BoxAt builds a box centered on c with the given full extents
func BoxAt(c, size Vec3) AABB {
	h := size.Mul(0.5)
	return AABB{Min: c.Sub(h), Max: c.Add(h)}
}

// Center returns the box midpoint
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// IntersectAABB returns the entry distance of r into b within [0, maxDist]
// Rays starting inside the box report distance 0
func IntersectAABB(r Ray, b AABB, maxDist float64) (float64, bool) {
	if !r.Valid() {
		return 0, false
	}
	tMin, tMax := 0.0, maxDist
	for i := 0; i < 3; i++ {
		if math.Abs(r.Dir[i]) < 1e-12 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[i]
		t1 := (b.Min[i] - r.Origin[i]) * inv
		t2 := (b.Max[i] - r.Origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// IntersectSphere returns the nearest non-negative distance at which r enters the sphere
func IntersectSphere(r Ray, center Vec3, radius, maxDist float64) (float64, bool) {
	if !r.Valid() {
		return 0, false
	}
	oc := r.Origin.Sub(center)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	b := oc.Dot(r.Dir)
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDist {
		return 0, false
	}
	return t, true
}
