package focusmode

import (
	"log/slog"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/notify"
)

// Tick advances the timer by one second. It does nothing while the timer is
// stopped. A pomodoro countdown that reaches zero completes the interval.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsTimerRunning {
		return
	}

	c.state.TotalSessionSeconds = c.elapsedLocked()

	c.ticks++
	if c.ticks%persistEvery == 0 {
		c.persistLocked()
	}

	if c.state.TimerMode == models.ModeCountUp {
		c.state.TimerSeconds++
		c.emitLocked(EventTimerUpdated)

		return
	}

	if c.state.TimerSeconds > 1 {
		c.state.TimerSeconds--
		c.emitLocked(EventTimerUpdated)

		return
	}

	c.state.TimerSeconds = 0
	c.completing = true

	c.completeLocked()
}

// Ticking reports whether the tick source should be delivering ticks.
func (c *Controller) Ticking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Phase == PhaseActive && c.state.IsTimerRunning
}

// StartTimer starts the timer. Callers are expected to only start the timer
// in the active phase.
func (c *Controller) StartTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsTimerRunning {
		return
	}

	c.state.IsTimerRunning = true
	c.emitLocked(EventTimerUpdated)
}

// PauseTimer stops the timer without resetting it.
func (c *Controller) PauseTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsTimerRunning {
		return
	}

	c.state.IsTimerRunning = false
	c.persistLocked()
	c.emitLocked(EventTimerUpdated)
}

// ResetTimer stops the timer and rewinds it to the duration of the current
// mode and pomodoro phase.
func (c *Controller) ResetTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetTimerLocked()
	c.emitLocked(EventTimerUpdated)
}

// AddMinutes adds n minutes to both the remaining and the initial timer
// values. Negative values subtract, stopping at zero.
func (c *Controller) AddMinutes(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.TimerSeconds = max(c.state.TimerSeconds+n*60, 0)
	c.state.InitialTimerSeconds = max(c.state.InitialTimerSeconds+n*60, 0)

	c.emitLocked(EventTimerUpdated)
}

// CompleteCurrentTimer finishes the current interval immediately, exactly
// as if the countdown had reached zero.
func (c *Controller) CompleteCurrentTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.TimerSeconds = 0
	c.state.TotalSessionSeconds = c.elapsedLocked()
	c.completing = true

	c.completeLocked()
}

// CompletePomodoroSession runs the completion routine for the current
// pomodoro phase.
func (c *Controller) CompletePomodoroSession() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.completing = true

	c.completeLocked()
}

// SetTimerMode switches between pomodoro and count-up timing. It is ignored
// while the timer is running.
func (c *Controller) SetTimerMode(m models.TimerMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.Valid() || c.state.IsTimerRunning {
		return
	}

	c.state.TimerMode = m
	c.resetTimerLocked()
	c.persistLocked()
	c.emitLocked(EventSettingsChanged)
}

// SetPomodoroPhase switches between the focus and break intervals. It is
// ignored while the timer is running.
func (c *Controller) SetPomodoroPhase(p models.PomodoroPhase) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !p.Valid() || c.state.IsTimerRunning {
		return
	}

	c.state.PomodoroPhase = p
	c.resetTimerLocked()
	c.emitLocked(EventTimerUpdated)
}

// durationLocked returns the starting timer value in seconds for the current
// mode and pomodoro phase.
func (c *Controller) durationLocked() int {
	if c.state.TimerMode == models.ModeCountUp {
		return 0
	}

	if c.state.PomodoroPhase == models.PhaseBreak {
		return c.state.Settings.BreakDuration * 60
	}

	return c.state.Settings.FocusDuration * 60
}

func (c *Controller) resetTimerLocked() {
	c.state.TimerSeconds = c.durationLocked()
	c.state.InitialTimerSeconds = c.state.TimerSeconds
	c.state.IsTimerRunning = false
}

// completeLocked flips the pomodoro phase and schedules the completion side
// effects. The guard is cleared before anything else so that the routine
// runs at most once per boundary.
func (c *Controller) completeLocked() {
	if !c.completing {
		return
	}

	c.completing = false

	finished := c.state.PomodoroPhase

	if finished == models.PhaseFocus {
		c.state.PomodorosCompleted++
		c.state.PomodoroPhase = models.PhaseBreak
	} else {
		c.state.PomodoroPhase = models.PhaseFocus
	}

	c.resetTimerLocked()
	c.state.IsTimerRunning = c.state.Settings.AutoStartTimers

	c.log.Info(
		"interval completed",
		slog.String("finished", string(finished)),
		slog.String("next", string(c.state.PomodoroPhase)),
		slog.Int("pomodoros", c.state.PomodorosCompleted),
	)

	c.persistLocked()
	c.emitLocked(EventIntervalCompleted)

	c.dispatch(c.effects(finished))
}

// effects returns the best-effort side effects of completing the finished
// interval. The returned func does not touch controller state.
func (c *Controller) effects(finished models.PomodoroPhase) func() {
	settings := c.state.Settings
	chime := c.chime
	notifier := c.notifier
	sessionCmd := c.sessionCmd
	log := c.log

	title, body := "Focus interval complete", "Time for a break!"
	if finished == models.PhaseBreak {
		title, body = "Break is over", "Ready to focus again?"
	}

	return func() {
		if settings.SoundEnabled && chime != nil {
			err := chime.Play()
			if err != nil {
				log.Debug("unable to play chime", slog.Any("error", err))
			}
		}

		if settings.NotificationsEnabled && notifier != nil {
			sendNotification(log, notifier, title, body)
		}

		err := runSessionCmd(sessionCmd)
		if err != nil {
			log.Debug("session command failed", slog.Any("error", err))
		}
	}
}

func sendNotification(log *slog.Logger, n Notifier, title, body string) {
	if n.Permission() == notify.PermissionDefault {
		_, err := n.RequestPermission()
		if err != nil {
			log.Debug(
				"notification permission request failed",
				slog.Any("error", err),
			)

			return
		}
	}

	err := n.Notify(title, body)
	if err != nil {
		log.Debug("unable to display notification", slog.Any("error", err))
	}
}
