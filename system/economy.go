package system

import (
	"fmt"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
)

// Reward is the payout of one kill
type Reward struct {
	Score int
	Coins int
	XP    int
}

// KillReward returns the fixed payout for a hostile kind
func KillReward(kind component.HostileKind) Reward {
	if kind == component.HostileBoss {
		return Reward{Score: parameter.BossKillScore, Coins: parameter.BossKillCoins, XP: parameter.BossKillXP}
	}
	return Reward{Score: parameter.RegularKillScore, Coins: parameter.RegularKillCoins, XP: parameter.RegularKillXP}
}

// EconomySystem credits kills and runs the level curve
type EconomySystem struct {
	env  Env
	prog *component.Progression

	statScore *status.Counter
	statCoins *status.Counter
	statKills *status.Counter
	statLevel *status.Counter

	enabled bool
}

// NewEconomySystem creates the economy over prog
func NewEconomySystem(env Env, prog *component.Progression) *EconomySystem {
	s := &EconomySystem{
		env:  env,
		prog: prog,

		statScore: env.Status.Counters.Get("player.score"),
		statCoins: env.Status.Counters.Get("player.coins"),
		statKills: env.Status.Counters.Get("player.kills"),
		statLevel: env.Status.Counters.Get("player.level"),
	}
	s.Init()
	return s
}

// Init resets progression to level 1
func (s *EconomySystem) Init() {
	*s.prog = *component.NewProgression()
	s.publish()
	s.enabled = true
}

// Name returns the system's name
func (s *EconomySystem) Name() string {
	return "economy"
}

// Priority returns the system's priority
func (s *EconomySystem) Priority() int {
	return parameter.PriorityEconomy
}

// EventTypes returns the event types EconomySystem handles
func (s *EconomySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
	}
}

// HandleEvent applies a toggle addressed to this system
func (s *EconomySystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SystemTogglePayload); ok && p.SystemName == s.Name() {
		s.enabled = p.Enabled
	}
}

// Update mirrors progression into telemetry
func (s *EconomySystem) Update(dt float64) {
	if !s.enabled {
		return
	}
	s.publish()
}

func (s *EconomySystem) publish() {
	s.statScore.Set(int64(s.prog.Score))
	s.statCoins.Set(int64(s.prog.Coins))
	s.statKills.Set(int64(s.prog.Kills))
	s.statLevel.Set(int64(s.prog.Level))
}

// RewardKill credits a kill of kind and returns the resulting kill counter
func (s *EconomySystem) RewardKill(kind component.HostileKind) (Reward, int) {
	r := KillReward(kind)
	s.prog.Score += r.Score
	s.prog.Coins += r.Coins
	s.prog.Kills++
	s.AddXP(r.XP)
	return r, s.prog.Kills
}

// AddXP accrues xp and announces a level gained
func (s *EconomySystem) AddXP(amount int) bool {
	if !s.prog.AddXP(amount) {
		return false
	}
	s.env.Queue.Emit(event.EventLevelUp, &event.LevelUpPayload{
		Level:    s.prog.Level,
		XPToNext: s.prog.XPToNext,
	})
	s.env.Board.Show(fmt.Sprintf("LEVEL UP! Level %d", s.prog.Level), parameter.LevelUpMessageDuration)
	return true
}

var (
	_ engine.System = (*EconomySystem)(nil)
	_ event.Handler = (*EconomySystem)(nil)
)
