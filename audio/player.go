package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mittubose/Grabby-Hand-rat-killer/event"
)

// Sink receives streamers to play
type Sink interface {
	Play(s ...beep.Streamer)
}

type speakerSink struct{}

func (speakerSink) Play(s ...beep.Streamer) { speaker.Play(s...) }

// CuePlayer is an event handler that plays one cue per routed event
// Loops for rope tension and the pursuer are held until their stop events
// Every method is a no-op before Initialize succeeds
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sink        Sink
	seed        int64
	initialized bool
	muted       bool

	rope    *beep.Ctrl
	pursuer *beep.Ctrl
	played  map[Cue]int
}

// NewCuePlayer creates an uninitialized player
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return err
	}
	p.attach(speakerSink{})
	return nil
}

// attach routes the mixer to sink; caller holds mu
func (p *CuePlayer) attach(sink Sink) {
	p.sink = sink
	p.sink.Play(p.mixer)
	p.seed = time.Now().UnixNano()
	p.initialized = true
}

// SetMuted silences new cues and pauses running loops
func (p *CuePlayer) SetMuted(m bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setMuted(m)
}

func (p *CuePlayer) setMuted(m bool) {
	p.muted = m
	p.locked(func() {
		for _, c := range []*beep.Ctrl{p.rope, p.pursuer} {
			if c != nil {
				c.Paused = m
			}
		}
	})
}

// locked runs fn under the speaker lock when the speaker is live
func (p *CuePlayer) locked(fn func()) {
	if _, live := p.sink.(speakerSink); live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Play mixes in a one-shot cue
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.play(c)
}

func (p *CuePlayer) play(c Cue) {
	if !p.initialized || p.muted {
		return
	}
	p.seed++
	s := render(c, p.seed)
	if s == nil {
		return
	}
	p.played[c]++
	p.add(s)
}

func (p *CuePlayer) add(s beep.Streamer) {
	p.locked(func() { p.mixer.Add(s) })
}

// loop starts an endless streamer unless it is already running
func (p *CuePlayer) loop(slot **beep.Ctrl, s beep.Streamer) {
	if !p.initialized || (*slot != nil && !(*slot).Paused) {
		return
	}
	ctrl := &beep.Ctrl{Streamer: s, Paused: p.muted}
	*slot = ctrl
	p.add(ctrl)
}

// stop ends a loop; the mixer drops a Ctrl whose streamer is nil
func (p *CuePlayer) stop(slot **beep.Ctrl) {
	if *slot == nil {
		return
	}
	c := *slot
	p.locked(func() { c.Streamer = nil })
	*slot = nil
}

// EventTypes returns every event with a cue or a loop transition
func (p *CuePlayer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShotFired,
		event.EventGrappleAttached,
		event.EventGrappleReleased,
		event.EventHostileHit,
		event.EventHostileKilled,
		event.EventBossSpawned,
		event.EventPlayerDamaged,
		event.EventLevelUp,
		event.EventTilePuzzleSolved,
		event.EventPuzzleSolved,
		event.EventPuzzleBlocked,
		event.EventSwitchActivated,
		event.EventSwitchReset,
		event.EventItemPurchased,
		event.EventItemUsed,
		event.EventCountdownExpired,
		event.EventGameOver,
		event.EventPauseToggled,
	}
}

// HandleEvent plays the event's cue and updates the loops
func (p *CuePlayer) HandleEvent(ev event.GameEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.Type {
	case event.EventGrappleAttached:
		p.loop(&p.rope, newSweep(80, 200, 2*time.Second))
	case event.EventGrappleReleased:
		p.stop(&p.rope)
	case event.EventCountdownExpired:
		p.loop(&p.pursuer, newPulse(600*time.Millisecond))
	case event.EventGameOver:
		p.stop(&p.rope)
		p.stop(&p.pursuer)
	case event.EventPauseToggled:
		if pl, ok := ev.Payload.(*event.PausePayload); ok {
			p.setMuted(pl.Paused)
		}
		return
	}
	p.play(CueFor(ev))
}

// Played returns how many times c was mixed in
func (p *CuePlayer) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// Cleanup stops every sound; the player returns to its uninitialized state
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.stop(&p.rope)
	p.stop(&p.pursuer)
	p.locked(p.mixer.Clear)
	p.initialized = false
}

var _ event.Handler = (*CuePlayer)(nil)
