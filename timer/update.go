package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/focustab/focusmode"
	"github.com/ayoisaiah/focustab/internal/models"
)

// handleTick advances the controller's timer once per second. The
// snapshot is refreshed here as well since events may be dropped.
func (t *Timer) handleTick() (tea.Model, tea.Cmd) {
	if t.ctrl.Ticking() {
		t.ctrl.Tick()
	}

	t.state = t.ctrl.State()

	if t.state.Phase == focusmode.PhaseIdle {
		return t, tea.Quit
	}

	return t, tick()
}

func (t *Timer) handleEvent(ev focusmode.Event) (tea.Model, tea.Cmd) {
	t.state = ev.State

	if ev.Type == focusmode.EventPhaseChanged &&
		ev.State.Phase == focusmode.PhaseIdle {
		return t, tea.Quit
	}

	return t, waitForEvent(t.events)
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.state = t.ctrl.State()
	active := t.state.Phase == focusmode.PhaseActive

	switch {
	case key.Matches(msg, t.keys.quit):
		return t, tea.Quit

	case key.Matches(msg, t.keys.exit):
		if t.state.Phase == focusmode.PhaseIdle {
			return t, tea.Quit
		}

		t.ctrl.ExitFocusMode()

	case !active:
		// the remaining keys only apply once the timer is on screen
		return t, nil

	case key.Matches(msg, t.keys.togglePlay):
		if t.state.IsTimerRunning {
			t.ctrl.PauseTimer()
		} else {
			t.ctrl.StartTimer()
		}

	case key.Matches(msg, t.keys.reset):
		t.ctrl.ResetTimer()

	case key.Matches(msg, t.keys.add):
		t.ctrl.AddMinutes(step)

	case key.Matches(msg, t.keys.subtract):
		t.ctrl.AddMinutes(-step)

	case key.Matches(msg, t.keys.done):
		t.ctrl.CompleteCurrentTimer()

	case key.Matches(msg, t.keys.mode):
		next := models.ModeCountUp
		if t.state.TimerMode == models.ModeCountUp {
			next = models.ModePomodoro
		}

		t.ctrl.SetTimerMode(next)

	case key.Matches(msg, t.keys.pomodoro):
		next := models.PhaseBreak
		if t.state.PomodoroPhase == models.PhaseBreak {
			next = models.PhaseFocus
		}

		t.ctrl.SetPomodoroPhase(next)
	}

	t.state = t.ctrl.State()

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick()

	case eventMsg:
		return t.handleEvent(focusmode.Event(msg))

	case eventsClosedMsg:
		return t, tea.Quit

	case tea.KeyMsg:
		t.log.Debug("key press", slog.String("msg", spew.Sdump(msg)))

		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		t.help.Width = msg.Width

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
