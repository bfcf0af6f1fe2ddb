package system

import (
	"time"

	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
)

// MessageBoard holds the single transient instruction shown to the player
// Each Show replaces the previous message and its pending clear
type MessageBoard struct {
	sched *engine.Scheduler
	queue *event.Queue
	text  string
	token *engine.Token
}

// NewMessageBoard creates an empty board
func NewMessageBoard(sched *engine.Scheduler, queue *event.Queue) *MessageBoard {
	return &MessageBoard{sched: sched, queue: queue}
}

// Show displays text for d
func (m *MessageBoard) Show(text string, d time.Duration) {
	m.token.Kill()
	tok := engine.NewToken()
	m.token = tok
	m.text = text
	m.queue.Emit(event.EventMessage, &event.MessagePayload{Text: text})
	m.sched.After(d, tok, func() {
		m.text = ""
		tok.Kill()
	})
}

// Text returns the visible message, empty when none
func (m *MessageBoard) Text() string {
	return m.text
}

// Clear removes the message and cancels its pending clear
func (m *MessageBoard) Clear() {
	m.token.Kill()
	m.token = nil
	m.text = ""
}
