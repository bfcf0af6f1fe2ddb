package engine

import (
	"time"

	"github.com/zyedidia/generic/heap"
)

// Task is deferred work executed at the start of a tick
type Task func()

type scheduledTask struct {
	deadline uint64
	seq      uint64 // FIFO among equal deadlines
	token    *Token
	run      Task
}

// Scheduler is a tick-keyed deferred task queue
// Drained at the start of each tick, before any system update
type Scheduler struct {
	clock *Clock
	queue *heap.Heap[scheduledTask]
	seq   uint64

	ran     int
	skipped int
}

// NewScheduler creates a scheduler reading the current tick from clock
func NewScheduler(clock *Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		queue: heap.New[scheduledTask](func(a, b scheduledTask) bool {
			if a.deadline != b.deadline {
				return a.deadline < b.deadline
			}
			return a.seq < b.seq
		}),
	}
}

// After schedules fn to run d from now, guarded by token
func (s *Scheduler) After(d time.Duration, token *Token, fn Task) {
	s.At(s.clock.Tick()+TicksFor(d), token, fn)
}

// At schedules fn for an absolute tick
func (s *Scheduler) At(tick uint64, token *Token, fn Task) {
	s.seq++
	s.queue.Push(scheduledTask{deadline: tick, seq: s.seq, token: token, run: fn})
}

// RunDue executes every task whose deadline is at or before the current tick
// Tasks with dead tokens are discarded without running
func (s *Scheduler) RunDue() int {
	now := s.clock.Tick()
	n := 0
	for {
		next, ok := s.queue.Peek()
		if !ok || next.deadline > now {
			return n
		}
		s.queue.Pop()
		if !next.token.Alive() {
			s.skipped++
			continue
		}
		next.run()
		s.ran++
		n++
	}
}

// Pending returns the number of queued tasks, including stale ones
func (s *Scheduler) Pending() int {
	return s.queue.Size()
}

// Stats returns executed and skipped task counts since creation
func (s *Scheduler) Stats() (ran, skipped int) {
	return s.ran, s.skipped
}
