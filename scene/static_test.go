package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

func TestRayIntersectOrdersByDistance(t *testing.T) {
	s := NewStatic()
	far := s.AddSolid(VisualWall, vmath.Vec3{0, 0, -10}, vmath.Vec3{2, 2, 2}, true)
	near := s.AddSolid(VisualButton, vmath.Vec3{0, 0, -4}, vmath.Vec3{2, 2, 2}, false)
	s.CreateVisual(VisualKey, vmath.Vec3{0, 0, -2})

	hits := s.RayIntersect(vmath.NewRay(vmath.Vec3{}, vmath.Forward), 50)
	require.Len(t, hits, 2)
	assert.Equal(t, near, hits[0].Handle)
	assert.InDelta(t, 3, hits[0].Distance, 1e-9)
	assert.Equal(t, far, hits[1].Handle)

	assert.True(t, s.Grappable(far))
	assert.False(t, s.Grappable(near))
}

func TestRemoveUnknownHandleIsNoop(t *testing.T) {
	s := NewStatic()
	h := s.CreateVisual(VisualRegular, vmath.Vec3{})
	s.RemoveVisual(h)
	s.RemoveVisual(h)
	s.RemoveVisual(Handle(999))
	s.MoveVisual(h, vmath.Vec3{1, 1, 1})
	assert.Equal(t, 0, s.Len())
}

func TestBuildRoomPlacesPuzzleProps(t *testing.T) {
	s := NewStatic()
	l := BuildRoom(s, rand.New(rand.NewSource(1)))

	for _, h := range append([]Handle{l.Button, l.Door, l.TileWall}, l.Switches[:]...) {
		_, ok := s.Object(h)
		assert.True(t, ok)
	}
	key, ok := s.Object(l.Keys[1])
	require.True(t, ok)
	assert.False(t, key.Visible)

	hits := s.RayIntersect(vmath.NewRay(vmath.Vec3{5, 2, 5}, vmath.Vec3{0, -1, 0}), 3)
	var handles []Handle
	for _, hit := range hits {
		handles = append(handles, hit.Handle)
	}
	assert.Contains(t, handles, l.Button)

	assert.Len(t, l.Targets, 3)
}
