package component

import (
	"math"

	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
)

// Progression is the player's score, currency and level curve
type Progression struct {
	Level    int
	XP       int
	XPToNext int
	Coins    int
	Score    int
	Kills    int
}

// NewProgression starts at level 1
func NewProgression() *Progression {
	return &Progression{Level: 1, XPToNext: parameter.StartingXPToNext}
}

// AddXP accrues xp and applies at most one level-up per award
// Overflow carries over, even past the new threshold; reports whether a level was gained
func (p *Progression) AddXP(amount int) bool {
	if amount <= 0 {
		return false
	}
	p.XP += amount
	if p.XPToNext <= 0 || p.XP < p.XPToNext {
		return false
	}
	p.Level++
	p.XP -= p.XPToNext
	p.XPToNext = int(math.Floor(float64(p.XPToNext) * parameter.XPGrowth))
	return true
}
