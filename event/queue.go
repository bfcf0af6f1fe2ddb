package event

import "github.com/mittubose/Grabby-Hand-rat-killer/parameter"

// Queue is a fixed-size ring buffer for game events
// Single-threaded: owned by the simulation goroutine
//
// Overflow: oldest events overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
	tick   uint64
	lost   uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// SetTick stamps subsequently pushed events with tick
func (q *Queue) SetTick(tick uint64) {
	q.tick = tick
}

// Push appends an event, overwriting the oldest pending one when full
func (q *Queue) Push(ev GameEvent) {
	if ev.Tick == 0 {
		ev.Tick = q.tick
	}
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
		q.lost++
	}
}

// Emit is shorthand for pushing a typed payload
func (q *Queue) Emit(t EventType, payload any) {
	q.Push(GameEvent{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&parameter.EventBufferMask])
	}
	q.head = q.tail
	return result
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Lost returns how many events were overwritten before being consumed
func (q *Queue) Lost() uint64 {
	return q.lost
}
