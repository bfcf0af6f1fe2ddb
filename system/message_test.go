package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mittubose/Grabby-Hand-rat-killer/event"
)

func TestMessageBoardReplaces(t *testing.T) {
	f := newFixture(t)
	f.env.Board.Show("first", time.Second)
	f.stepFor(0.5)
	f.env.Board.Show("second", time.Second)

	f.stepFor(0.6)
	assert.Equal(t, "second", f.env.Board.Text(), "first clear was cancelled")
	f.stepFor(0.5)
	assert.Empty(t, f.env.Board.Text())
	assert.Equal(t, 2, countEvents(f.events(), event.EventMessage))
}

func TestMessageBoardClear(t *testing.T) {
	f := newFixture(t)
	f.env.Board.Show("hello", time.Second)
	f.env.Board.Clear()
	assert.Empty(t, f.env.Board.Text())
	f.env.Board.Clear()
}
