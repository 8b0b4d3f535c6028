package focusmode

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/focustab/internal/models"
)

// EventType identifies what changed in the session.
type EventType string

const (
	EventPhaseChanged      EventType = "phase_changed"
	EventTimerUpdated      EventType = "timer_updated"
	EventIntervalCompleted EventType = "interval_completed"
	EventSettingsChanged   EventType = "settings_changed"
)

// Event is delivered to subscribers after every change to the session.
type Event struct {
	At    time.Time `json:"at"`
	Type  EventType `json:"type"`
	State State     `json:"state"`
}

// emitLocked sends an event to every subscriber without blocking. A
// subscriber that is not keeping up misses the event.
func (c *Controller) emitLocked(t EventType) {
	if len(c.subscribers) == 0 {
		return
	}

	ev := Event{
		Type:  t,
		State: c.state,
		At:    c.clock.Now(),
	}

	for _, ch := range c.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

func newSessionRecord(s State, end time.Time) *models.SessionRecord {
	return &models.SessionRecord{
		ID:           uuid.NewString(),
		Label:        s.FocusTask,
		Mode:         s.TimerMode,
		StartTime:    s.SessionStartTime,
		EndTime:      end,
		TotalSeconds: s.TotalSessionSeconds,
		Pomodoros:    s.PomodorosCompleted,
	}
}
