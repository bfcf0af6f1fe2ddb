package scene

import (
	"sort"

	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// Object is an entry in the static scene
type Object struct {
	Kind      VisualKind
	Position  vmath.Vec3
	Box       vmath.AABB
	Solid     bool // Participates in ray queries
	Grappable bool
	Visible   bool
}

// Static is an in-memory scene of axis-aligned boxes
// Implements both Presentation and Geometry
type Static struct {
	objects map[Handle]*Object
	order   []Handle
	next    Handle
}

// NewStatic creates an empty scene
func NewStatic() *Static {
	return &Static{objects: make(map[Handle]*Object)}
}

// AddSolid inserts ray-blocking geometry centered on pos
func (s *Static) AddSolid(kind VisualKind, pos, size vmath.Vec3, grappable bool) Handle {
	return s.insert(&Object{
		Kind:      kind,
		Position:  pos,
		Box:       vmath.BoxAt(pos, size),
		Solid:     true,
		Grappable: grappable,
		Visible:   true,
	})
}

// CreateVisual inserts a non-solid visual
func (s *Static) CreateVisual(kind VisualKind, pos vmath.Vec3) Handle {
	return s.insert(&Object{Kind: kind, Position: pos, Visible: true})
}

// MoveVisual updates a visual position; solids keep their box size
func (s *Static) MoveVisual(h Handle, pos vmath.Vec3) {
	o, ok := s.objects[h]
	if !ok {
		return
	}
	if o.Solid {
		o.Box = vmath.BoxAt(pos, o.Box.Max.Sub(o.Box.Min))
	}
	o.Position = pos
}

// SetVisible toggles drawing; hidden solids still block rays
func (s *Static) SetVisible(h Handle, visible bool) {
	if o, ok := s.objects[h]; ok {
		o.Visible = visible
	}
}

// RemoveVisual deletes h; unknown handles are ignored
func (s *Static) RemoveVisual(h Handle) {
	if _, ok := s.objects[h]; !ok {
		return
	}
	delete(s.objects, h)
	for i, o := range s.order {
		if o == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// RayIntersect returns solid hits within maxDist ordered by distance
func (s *Static) RayIntersect(r vmath.Ray, maxDist float64) []Intersection {
	var hits []Intersection
	for _, h := range s.order {
		o := s.objects[h]
		if !o.Solid {
			continue
		}
		if d, ok := vmath.IntersectAABB(r, o.Box, maxDist); ok {
			hits = append(hits, Intersection{Handle: h, Distance: d, Point: r.At(d)})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// Grappable reports whether h is attachable solid geometry
func (s *Static) Grappable(h Handle) bool {
	o, ok := s.objects[h]
	return ok && o.Solid && o.Grappable
}

// Object returns the entry for h
func (s *Static) Object(h Handle) (Object, bool) {
	o, ok := s.objects[h]
	if !ok {
		return Object{}, false
	}
	return *o, true
}

// Each visits objects in insertion order
func (s *Static) Each(fn func(h Handle, o Object)) {
	for _, h := range s.order {
		fn(h, *s.objects[h])
	}
}

// Len returns the object count
func (s *Static) Len() int {
	return len(s.objects)
}

func (s *Static) insert(o *Object) Handle {
	s.next++
	s.objects[s.next] = o
	s.order = append(s.order, s.next)
	return s.next
}
