package scene

import (
	"math/rand"

	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

const (
	wallHeight     = 20.0
	pillarCount    = 8
	platformCount  = 10
	switchSpacing  = 2.0
	keyHoverOffset = 0.5
)

// Layout names the interactive handles of a built room
type Layout struct {
	Button   Handle
	Switches [parameter.SwitchCount]Handle
	Door     Handle
	TileWall Handle
	Keys     map[int]Handle // Reward key per puzzle id
	Targets  map[int]vmath.Vec3
}

// BuildRoom populates s with the arena, its boundary walls, climbing geometry and puzzle props
// rng drives the placement of pillars and platforms
func BuildRoom(s *Static, rng *rand.Rand) Layout {
	half := parameter.WorldSize / 2
	wallSize := vmath.Vec3{parameter.WorldSize, wallHeight, 1}
	sideSize := vmath.Vec3{1, wallHeight, parameter.WorldSize}
	s.AddSolid(VisualWall, vmath.Vec3{0, wallHeight / 2, -half}, wallSize, true)
	s.AddSolid(VisualWall, vmath.Vec3{0, wallHeight / 2, half}, wallSize, true)
	s.AddSolid(VisualWall, vmath.Vec3{-half, wallHeight / 2, 0}, sideSize, true)
	s.AddSolid(VisualWall, vmath.Vec3{half, wallHeight / 2, 0}, sideSize, true)

	spread := func(margin float64) float64 {
		return (rng.Float64() - 0.5) * (parameter.WorldSize - margin)
	}
	for i := 0; i < pillarCount; i++ {
		s.AddSolid(VisualPillar, vmath.Vec3{spread(2), 6, spread(2)}, vmath.Vec3{1, 12, 1}, true)
	}
	for i := 0; i < platformCount; i++ {
		y := 3 + rng.Float64()*15
		s.AddSolid(VisualPlatform, vmath.Vec3{spread(4), y, spread(4)}, vmath.Vec3{4, 0.5, 4}, true)
	}

	l := Layout{
		Keys:    make(map[int]Handle),
		Targets: make(map[int]vmath.Vec3),
	}

	buttonPos := vmath.Vec3{5, 1, 5}
	l.Button = s.AddSolid(VisualButton, buttonPos, vmath.Vec3{0.6, 0.2, 0.6}, true)
	l.Keys[1] = s.CreateVisual(VisualKey, buttonPos.Add(vmath.Vec3{0, keyHoverOffset, 0}))
	s.SetVisible(l.Keys[1], false)
	l.Targets[1] = buttonPos

	for i := range l.Switches {
		pos := vmath.Vec3{-5 + float64(i)*switchSpacing, 3, -5}
		l.Switches[i] = s.AddSolid(VisualSwitch, pos, vmath.Vec3{0.3, 0.8, 0.2}, true)
	}
	l.Keys[2] = s.CreateVisual(VisualKey, vmath.Vec3{-5, 3 + keyHoverOffset, -5})
	s.SetVisible(l.Keys[2], false)
	l.Targets[2] = vmath.Vec3{-3, 3, -5}

	doorPos := vmath.Vec3{0, 1.5, -half + 0.5}
	l.Door = s.AddSolid(VisualDoor, doorPos, vmath.Vec3{2, 3, 0.2}, true)
	l.Targets[3] = doorPos

	l.TileWall = s.AddSolid(VisualTileWall, vmath.Vec3{0, 3, -half + 1}, vmath.Vec3{4, 4, 0.2}, false)
	return l
}
