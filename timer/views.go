package timer

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/focustab/focusmode"
	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/internal/timeutil"
)

func (t *Timer) enteringView() string {
	var s strings.Builder

	s.WriteString(t.style.main.Render("Entering focus mode"))

	if t.state.FocusTask != "" {
		s.WriteString("\n\n" + t.style.secondary.Render(t.state.FocusTask))
	}

	return s.String()
}

func (t *Timer) transitionView() string {
	q := t.state.Quote

	return t.style.main.Render(q.Icon+"  "+q.Text) +
		"\n\n" + t.style.hint.Render("Get ready...")
}

// percent returns how much of the current interval has elapsed.
func (t *Timer) percent() float64 {
	if t.state.TimerMode == models.ModeCountUp ||
		t.state.InitialTimerSeconds == 0 {
		return 0
	}

	done := 1 - float64(t.state.TimerSeconds)/float64(t.state.InitialTimerSeconds)

	return min(max(done, 0), 1)
}

func (t *Timer) timerView() string {
	var s strings.Builder

	switch {
	case t.state.TimerMode == models.ModeCountUp:
		s.WriteString(t.style.countUp.Render())
	case t.state.PomodoroPhase == models.PhaseBreak:
		s.WriteString(t.style.brk.Render())
	default:
		s.WriteString(t.style.focus.Render())
	}

	if t.state.FocusTask != "" {
		s.WriteString(t.style.secondary.Render(t.state.FocusTask))
	}

	if !t.state.IsTimerRunning {
		s.WriteString(" " + t.style.hint.Render("[Paused]"))
	}

	if t.state.TimerMode == models.ModePomodoro {
		s.WriteString(" " + t.style.hint.Render(
			fmt.Sprintf("(%d done)", t.state.PomodorosCompleted),
		))
	}

	clock := timeutil.FormatClock(
		t.state.TimerSeconds,
		t.state.Settings.HideSeconds,
	)

	s.WriteString("\n\n")
	s.WriteString(t.style.main.Render(clock))

	if t.state.TimerMode == models.ModePomodoro {
		s.WriteString("\n\n")
		s.WriteString(t.progress.ViewAs(t.percent()))
	}

	s.WriteString("\n\n" + t.help.View(t.keys))

	return s.String()
}

func (t *Timer) celebrationView() string {
	c := t.state.Celebration

	var s strings.Builder

	s.WriteString(t.style.main.Render(c.Emoji + "  " + c.Title))
	s.WriteString("\n\n" + t.style.secondary.Render(c.Subtitle))
	s.WriteString("\n\n" + t.style.hint.Render(
		"Focused for "+timeutil.FormatDuration(t.state.TotalSessionSeconds),
	))

	return s.String()
}

func (t *Timer) View() string {
	var view string

	switch t.state.Phase {
	case focusmode.PhaseIdle:
		return ""
	case focusmode.PhaseEntering:
		view = t.enteringView()
	case focusmode.PhaseTransition:
		view = t.transitionView()
	case focusmode.PhaseActive:
		view = t.timerView()
	case focusmode.PhaseExiting:
		view = t.style.hint.Render("Wrapping up...")
	case focusmode.PhaseCelebration:
		view = t.celebrationView()
	case focusmode.PhaseLeaving:
		view = t.style.hint.Render("See you next time")
	}

	return t.style.base.Render(view)
}
