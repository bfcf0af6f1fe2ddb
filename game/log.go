package game

import (
	"log"

	"github.com/mittubose/Grabby-Hand-rat-killer/event"
)

// LogHandler writes session milestones to a logger
type LogHandler struct {
	logger *log.Logger
}

// NewLogHandler tags every line with the session id
// A nil logger writes through the standard logger's output
func NewLogHandler(id string, logger *log.Logger) *LogHandler {
	if logger == nil {
		logger = log.New(log.Writer(), "", log.LstdFlags)
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return &LogHandler{logger: log.New(logger.Writer(), "["+id+"] ", logger.Flags())}
}

// EventTypes returns the milestones worth a log line
func (h *LogHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBossSpawned,
		event.EventHostileKilled,
		event.EventLevelUp,
		event.EventPuzzleSolved,
		event.EventCountdownExpired,
		event.EventItemPurchased,
		event.EventItemEquipped,
		event.EventGameOver,
	}
}

// HandleEvent formats one milestone
func (h *LogHandler) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.HostilePayload:
		h.logger.Printf("tick %d: %s id=%d health=%d", ev.Tick, ev.Type, p.ID, p.Health)
	case *event.KillPayload:
		if p.Boss {
			h.logger.Printf("tick %d: boss %d killed, score=%d", ev.Tick, p.ID, p.Score)
		}
	case *event.LevelUpPayload:
		h.logger.Printf("tick %d: level %d, next at %d xp", ev.Tick, p.Level, p.XPToNext)
	case *event.PuzzlePayload:
		h.logger.Printf("tick %d: puzzle %d solved", ev.Tick, p.ID)
	case *event.ItemPayload:
		h.logger.Printf("tick %d: %s %s (%s)", ev.Tick, ev.Type, p.ItemID, p.Kind)
	case *event.GameOverPayload:
		h.logger.Printf("tick %d: game over win=%t %q", ev.Tick, p.Win, p.Message)
	default:
		h.logger.Printf("tick %d: %s", ev.Tick, ev.Type)
	}
}

var _ event.Handler = (*LogHandler)(nil)
