// Package audio turns simulation events into short synthesized cues
package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/mittubose/Grabby-Hand-rat-killer/event"
)

// Cue is one sound effect
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueGrapple
	CueRelease
	CueHit
	CueKill
	CueBoss
	CueDamage
	CueLevelUp
	CuePuzzle
	CueBlocked
	CueSwitch
	CuePurchase
	CueWin
	CueLose
)

var cueNames = map[Cue]string{
	CueNone:     "none",
	CueShot:     "shot",
	CueGrapple:  "grapple",
	CueRelease:  "release",
	CueHit:      "hit",
	CueKill:     "kill",
	CueBoss:     "boss",
	CueDamage:   "damage",
	CueLevelUp:  "level-up",
	CuePuzzle:   "puzzle",
	CueBlocked:  "blocked",
	CueSwitch:   "switch",
	CuePurchase: "purchase",
	CueWin:      "win",
	CueLose:     "lose",
}

func (c Cue) String() string {
	if n, ok := cueNames[c]; ok {
		return n
	}
	return "unknown"
}

// CueFor maps an event to its one-shot cue
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventShotFired:
		return CueShot
	case event.EventGrappleAttached:
		return CueGrapple
	case event.EventGrappleReleased:
		return CueRelease
	case event.EventHostileHit:
		return CueHit
	case event.EventHostileKilled:
		return CueKill
	case event.EventBossSpawned:
		return CueBoss
	case event.EventPlayerDamaged:
		return CueDamage
	case event.EventLevelUp, event.EventTilePuzzleSolved:
		return CueLevelUp
	case event.EventPuzzleSolved:
		return CuePuzzle
	case event.EventPuzzleBlocked, event.EventSwitchReset:
		return CueBlocked
	case event.EventSwitchActivated:
		return CueSwitch
	case event.EventItemPurchased, event.EventItemUsed:
		return CuePurchase
	case event.EventGameOver:
		if p, ok := ev.Payload.(*event.GameOverPayload); ok && p.Win {
			return CueWin
		}
		return CueLose
	}
	return CueNone
}

// render builds a finite streamer for c; seed feeds the noise cues
func render(c Cue, seed int64) beep.Streamer {
	ms := func(n int) int { return sampleRate.N(time.Duration(n) * time.Millisecond) }
	switch c {
	case CueShot:
		return beep.Take(ms(80), newChirp(880, 440, 80*time.Millisecond))
	case CueGrapple:
		return beep.Take(ms(120), newChirp(220, 660, 120*time.Millisecond))
	case CueRelease:
		return beep.Take(ms(150), newChirp(660, 180, 150*time.Millisecond))
	case CueHit:
		return beep.Take(ms(60), newCrack(seed))
	case CueKill:
		return beep.Take(ms(300), newCrack(seed))
	case CueBoss:
		return beep.Take(ms(600), newBuzz(55))
	case CueDamage:
		return beep.Take(ms(150), newBuzz(120))
	case CueLevelUp:
		return beep.Seq(
			beep.Take(ms(90), newChirp(440, 440, 90*time.Millisecond)),
			beep.Take(ms(90), newChirp(554, 554, 90*time.Millisecond)),
			beep.Take(ms(180), newChirp(659, 659, 180*time.Millisecond)),
		)
	case CuePuzzle:
		return beep.Take(ms(250), newChirp(330, 990, 250*time.Millisecond))
	case CueBlocked:
		return beep.Take(ms(150), newBuzz(90))
	case CueSwitch:
		return beep.Take(ms(60), newChirp(600, 600, 60*time.Millisecond))
	case CuePurchase:
		return beep.Take(ms(120), newChirp(990, 1320, 120*time.Millisecond))
	case CueWin:
		return beep.Take(ms(800), newChirp(262, 1047, 800*time.Millisecond))
	case CueLose:
		return beep.Take(ms(800), newChirp(220, 55, 800*time.Millisecond))
	}
	return nil
}
