package system

import (
	"math/rand"

	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// Env is the infrastructure every system shares
// It carries no game state; state slices are passed to each constructor explicitly
type Env struct {
	Sched  *engine.Scheduler
	Queue  *event.Queue
	View   scene.Presentation
	Board  *MessageBoard
	RNG    *rand.Rand
	Status *status.Registry
}

// endSession records the terminal outcome and announces it once
func endSession(env Env, s *component.Session, o component.Outcome, msg string) {
	if s.End(o, msg) {
		env.Queue.Emit(event.EventGameOver, &event.GameOverPayload{
			Win:     o == component.OutcomeWin,
			Message: msg,
		})
	}
}

// damagePlayer applies armor-reduced damage, reports its source and ends the session on death
func damagePlayer(env Env, body *component.Body, inv *component.Inventory, s *component.Session, raw float64, src vmath.Vec3) {
	if s.Over() {
		return
	}
	applied := body.TakeDamage(raw, inv.Defense)
	env.Queue.Emit(event.EventPlayerDamaged, &event.DamagePayload{
		Amount: applied,
		Source: src,
		Health: body.Health,
	})
	if body.Dead() {
		endSession(env, s, component.OutcomeLose, "You died!")
	}
}
