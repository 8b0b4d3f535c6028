package focusmode

import (
	"github.com/ayoisaiah/focustab/internal/models"
)

// SettingsPatch holds the settings to change. Nil fields are left as they
// are.
type SettingsPatch struct {
	FocusDuration        *int  `json:"focusDuration,omitempty"`
	BreakDuration        *int  `json:"breakDuration,omitempty"`
	SoundEnabled         *bool `json:"soundEnabled,omitempty"`
	AutoStartTimers      *bool `json:"autoStartTimers,omitempty"`
	HideSeconds          *bool `json:"hideSeconds,omitempty"`
	NotificationsEnabled *bool `json:"notificationsEnabled,omitempty"`
}

// Apply returns s with the patch merged in.
func (p SettingsPatch) Apply(s models.Settings) models.Settings {
	if p.FocusDuration != nil {
		s.FocusDuration = *p.FocusDuration
	}

	if p.BreakDuration != nil {
		s.BreakDuration = *p.BreakDuration
	}

	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}

	if p.AutoStartTimers != nil {
		s.AutoStartTimers = *p.AutoStartTimers
	}

	if p.HideSeconds != nil {
		s.HideSeconds = *p.HideSeconds
	}

	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}

	return normaliseSettings(s)
}

// UpdateSettings merges the patch into the current settings. While the
// timer is stopped in pomodoro mode, a changed duration for the current
// pomodoro phase resizes the timer immediately.
func (c *Controller) UpdateSettings(patch SettingsPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.state.Settings
	next := patch.Apply(prev)

	if next == prev {
		return
	}

	c.state.Settings = next

	if !c.state.IsTimerRunning && c.state.TimerMode == models.ModePomodoro {
		focusChanged := next.FocusDuration != prev.FocusDuration &&
			c.state.PomodoroPhase == models.PhaseFocus
		breakChanged := next.BreakDuration != prev.BreakDuration &&
			c.state.PomodoroPhase == models.PhaseBreak

		if focusChanged || breakChanged {
			c.resetTimerLocked()
		}
	}

	c.persistLocked()
	c.emitLocked(EventSettingsChanged)
}

// normaliseSettings clamps durations to at least one minute.
func normaliseSettings(s models.Settings) models.Settings {
	s.FocusDuration = max(s.FocusDuration, 1)
	s.BreakDuration = max(s.BreakDuration, 1)

	return s
}
