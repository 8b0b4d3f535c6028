package timer

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustab/focusmode"
	"github.com/ayoisaiah/focustab/internal/clock"
	"github.com/ayoisaiah/focustab/internal/models"
)

var epoch = time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

func newTestTimer(t *testing.T) (*Timer, *focusmode.Controller, *clock.Fake) {
	t.Helper()

	fake := clock.NewFake(epoch)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctrl := focusmode.New(
		focusmode.WithClock(fake),
		focusmode.WithLogger(log),
		focusmode.WithDispatcher(func(f func()) { f() }),
	)

	t.Cleanup(ctrl.Close)

	tui := New(ctrl, WithLogger(log), WithDarkTheme(false))

	return tui, ctrl, fake
}

func activate(ctrl *focusmode.Controller, fake *clock.Fake) {
	ctrl.EnterFocusMode("write report")
	fake.Advance(focusmode.EnteringDelay + focusmode.TransitionDelay)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}

	_, ok := cmd().(tea.QuitMsg)

	return ok
}

func TestKeysDriveController(t *testing.T) {
	tui, ctrl, fake := newTestTimer(t)
	activate(ctrl, fake)

	_, _ = tui.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, ctrl.State().IsTimerRunning)

	_, _ = tui.Update(runes("+"))
	assert.Equal(t, 30*60, ctrl.State().TimerSeconds)

	_, _ = tui.Update(runes("-"))
	_, _ = tui.Update(runes("-"))
	assert.Equal(t, 20*60, ctrl.State().TimerSeconds)

	_, _ = tui.Update(runes("r"))
	assert.Equal(t, 25*60, ctrl.State().TimerSeconds)

	_, _ = tui.Update(runes("p"))
	assert.Equal(t, models.PhaseBreak, ctrl.State().PomodoroPhase)
	assert.Equal(t, 5*60, ctrl.State().TimerSeconds)

	_, _ = tui.Update(runes("m"))
	assert.Equal(t, models.ModeCountUp, ctrl.State().TimerMode)
	assert.Equal(t, 0, ctrl.State().TimerSeconds)

	_, _ = tui.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, ctrl.State().IsTimerRunning)

	// mode changes are ignored while the timer runs
	_, _ = tui.Update(runes("m"))
	assert.Equal(t, models.ModeCountUp, ctrl.State().TimerMode)
}

func TestKeysIgnoredBeforeActive(t *testing.T) {
	tui, ctrl, _ := newTestTimer(t)

	ctrl.EnterFocusMode("")

	_, _ = tui.Update(runes("+"))
	assert.Equal(t, 25*60, ctrl.State().TimerSeconds)
	assert.Equal(t, focusmode.PhaseEntering, ctrl.State().Phase)
}

func TestDoneCompletesInterval(t *testing.T) {
	tui, ctrl, fake := newTestTimer(t)
	activate(ctrl, fake)
	tui.state = ctrl.State()

	_, _ = tui.Update(runes("d"))

	s := ctrl.State()
	assert.Equal(t, 1, s.PomodorosCompleted)
	assert.Equal(t, models.PhaseBreak, s.PomodoroPhase)
	assert.Equal(t, s, tui.state)
}

func TestTickAdvancesTimer(t *testing.T) {
	tui, ctrl, fake := newTestTimer(t)
	activate(ctrl, fake)

	fake.Advance(time.Second)

	_, cmd := tui.Update(tickMsg(fake.Now()))
	require.NotNil(t, cmd)

	assert.Equal(t, 25*60-1, tui.state.TimerSeconds)
	// elapsed time counts from entry, including the entry animation
	assert.Equal(t, 5, tui.state.TotalSessionSeconds)
}

func TestExitQuitsOnceIdle(t *testing.T) {
	tui, ctrl, fake := newTestTimer(t)
	activate(ctrl, fake)
	tui.state = ctrl.State()

	_, cmd := tui.Update(runes("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, focusmode.PhaseExiting, ctrl.State().Phase)

	fake.Advance(focusmode.ExitingDelay)
	_, cmd = tui.Update(tickMsg(fake.Now()))
	assert.False(t, isQuit(cmd))
	assert.Contains(t, tui.View(), tui.state.Celebration.Title)

	fake.Advance(focusmode.CelebrationDelay + focusmode.LeavingDelay)
	_, cmd = tui.Update(tickMsg(fake.Now()))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, tui.View())
}

func TestIdleEventQuits(t *testing.T) {
	tui, ctrl, _ := newTestTimer(t)

	_, cmd := tui.Update(eventMsg(focusmode.Event{
		Type:  focusmode.EventPhaseChanged,
		State: ctrl.State(),
	}))

	assert.True(t, isQuit(cmd))
}

func TestCtrlCQuits(t *testing.T) {
	tui, ctrl, fake := newTestTimer(t)
	activate(ctrl, fake)

	_, cmd := tui.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, focusmode.PhaseActive, ctrl.State().Phase)
}

func TestTimerView(t *testing.T) {
	tui, ctrl, fake := newTestTimer(t)
	activate(ctrl, fake)
	tui.state = ctrl.State()

	view := tui.View()
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "write report")
	assert.Contains(t, view, "FOCUS")

	ctrl.UpdateSettings(focusmode.SettingsPatch{HideSeconds: ptr(true)})
	tui.state = ctrl.State()

	assert.Contains(t, tui.View(), "25m")
}

func TestPercent(t *testing.T) {
	tui, _, _ := newTestTimer(t)

	tui.state.TimerMode = models.ModePomodoro
	tui.state.InitialTimerSeconds = 100
	tui.state.TimerSeconds = 25

	assert.InDelta(t, 0.75, tui.percent(), 1e-9)

	tui.state.TimerSeconds = 150
	assert.InDelta(t, 0, tui.percent(), 1e-9)
}

func ptr[T any](v T) *T {
	return &v
}
