// Package timer is the terminal front end of a focus session
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/focustab/focusmode"
)

const (
	padding  = 2
	maxWidth = 80

	// step is the number of minutes added or removed by + and -.
	step = 5

	tickInterval = time.Second
	eventBuffer  = 16
)

type (
	tickMsg         time.Time
	eventMsg        focusmode.Event
	eventsClosedMsg struct{}
)

// Timer renders a focus session and forwards key presses to its
// controller.
type Timer struct {
	ctrl     *focusmode.Controller
	events   <-chan focusmode.Event
	log      *slog.Logger
	help     help.Model
	progress progress.Model
	style    style
	state    focusmode.State
	keys     keymap
}

// Option configures a Timer.
type Option func(*Timer)

// WithLogger sets the logger that receives debug dumps of UI messages.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.log = l
	}
}

// WithDarkTheme selects the colour palette.
func WithDarkTheme(dark bool) Option {
	return func(t *Timer) {
		t.style = newStyle(dark)
	}
}

// New returns a Timer that subscribes to ctrl's events.
func New(ctrl *focusmode.Controller, opts ...Option) *Timer {
	t := &Timer{
		ctrl:     ctrl,
		log:      slog.Default(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		style:    newStyle(true),
		keys:     defaultKeymap,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.events = ctrl.Subscribe(eventBuffer)
	t.state = ctrl.State()

	return t
}

func (t *Timer) Init() tea.Cmd {
	return tea.Batch(tick(), waitForEvent(t.events))
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(at time.Time) tea.Msg {
		return tickMsg(at)
	})
}

func waitForEvent(events <-chan focusmode.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}

		return eventMsg(ev)
	}
}
