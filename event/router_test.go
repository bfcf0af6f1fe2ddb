package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
)

type recorder struct {
	types []EventType
	seen  []GameEvent
	onEv  func(GameEvent)
}

func (r *recorder) EventTypes() []EventType { return r.types }

func (r *recorder) HandleEvent(ev GameEvent) {
	r.seen = append(r.seen, ev)
	if r.onEv != nil {
		r.onEv(ev)
	}
}

func TestQueueFIFOAndTickStamp(t *testing.T) {
	q := NewQueue()
	q.SetTick(7)
	q.Emit(EventShotFired, &ShotPayload{Hand: 1})
	q.Push(GameEvent{Type: EventHostileHit, Tick: 3})

	got := q.Consume()
	require.Len(t, got, 2)
	assert.Equal(t, EventShotFired, got[0].Type)
	assert.Equal(t, uint64(7), got[0].Tick)
	assert.Equal(t, uint64(3), got[1].Tick)
	assert.Nil(t, q.Consume())
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < parameter.EventQueueSize+5; i++ {
		q.Push(GameEvent{Type: EventMessage, Payload: i})
	}
	assert.Equal(t, parameter.EventQueueSize, q.Len())
	assert.Equal(t, uint64(5), q.Lost())

	got := q.Consume()
	assert.Equal(t, 5, got[0].Payload)
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	var order []string
	a := &recorder{types: []EventType{EventLevelUp}, onEv: func(GameEvent) { order = append(order, "a") }}
	b := &recorder{types: []EventType{EventLevelUp}, onEv: func(GameEvent) { order = append(order, "b") }}
	r.Register(a)
	r.Register(b)

	q.Emit(EventLevelUp, &LevelUpPayload{Level: 2})
	r.DispatchAll()

	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 2, r.HandlerCount(EventLevelUp))
	assert.Equal(t, 0, r.HandlerCount(EventShopOpened))
}

func TestRouterRoutesHandlerEmittedEvents(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	tile := &recorder{types: []EventType{EventTilePuzzleStarted}}
	lvl := &recorder{types: []EventType{EventLevelUp}, onEv: func(GameEvent) {
		q.Emit(EventTilePuzzleStarted, &TilePayload{})
	}}
	r.Register(lvl)
	r.Register(tile)

	q.Emit(EventLevelUp, &LevelUpPayload{Level: 2})
	all := r.DispatchAll()

	assert.Len(t, tile.seen, 1)
	assert.Len(t, all, 2)
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "BossSpawned", EventBossSpawned.String())
	et, ok := GetEventType("GameOver")
	assert.True(t, ok)
	assert.Equal(t, EventGameOver, et)
	assert.Equal(t, "Unknown", EventType(9999).String())
}
