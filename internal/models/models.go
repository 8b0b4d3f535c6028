// Package models defines the records persisted by the focus session
package models

import (
	"time"
)

// TimerMode selects how the focus timer advances.
type TimerMode string

const (
	// ModePomodoro counts down through alternating focus and break intervals.
	ModePomodoro TimerMode = "pomodoro"
	// ModeCountUp counts up from zero with no interval boundary.
	ModeCountUp TimerMode = "countup"
)

// Valid reports whether m is a known timer mode.
func (m TimerMode) Valid() bool {
	return m == ModePomodoro || m == ModeCountUp
}

// PomodoroPhase is the interval a pomodoro timer is counting down.
type PomodoroPhase string

const (
	PhaseFocus PomodoroPhase = "focus"
	PhaseBreak PomodoroPhase = "break"
)

// Valid reports whether p is a known pomodoro phase.
func (p PomodoroPhase) Valid() bool {
	return p == PhaseFocus || p == PhaseBreak
}

// Settings are the user preferences that survive across focus sessions.
// Durations are in minutes.
type Settings struct {
	FocusDuration        int  `json:"focusDuration"        yaml:"focus_duration"`
	BreakDuration        int  `json:"breakDuration"        yaml:"break_duration"`
	SoundEnabled         bool `json:"soundEnabled"         yaml:"sound_enabled"`
	AutoStartTimers      bool `json:"autoStartTimers"      yaml:"auto_start_timers"`
	HideSeconds          bool `json:"hideSeconds"          yaml:"hide_seconds"`
	NotificationsEnabled bool `json:"notificationsEnabled" yaml:"notifications_enabled"`
}

// DefaultSettings returns the settings used before any are configured.
func DefaultSettings() Settings {
	return Settings{
		FocusDuration:        25,
		BreakDuration:        5,
		SoundEnabled:         true,
		AutoStartTimers:      false,
		HideSeconds:          false,
		NotificationsEnabled: true,
	}
}

// FocusState is the persisted portion of the live focus session. A non-zero
// SessionStartTime means a session was in progress when it was written.
type FocusState struct {
	SessionStartTime    time.Time `json:"sessionStartTime"`
	Settings            Settings  `json:"settings"`
	TimerMode           TimerMode `json:"timerMode"`
	FocusTask           string    `json:"focusTask"`
	TotalSessionSeconds int       `json:"totalSessionSeconds"`
	PomodorosCompleted  int       `json:"pomodorosCompleted"`
}

// SessionRecord is a finished focus session kept in the history.
type SessionRecord struct {
	StartTime    time.Time `json:"start_time"    yaml:"start_time"`
	EndTime      time.Time `json:"end_time"      yaml:"end_time"`
	ID           string    `json:"id"            yaml:"id"`
	Label        string    `json:"label"         yaml:"label"`
	Mode         TimerMode `json:"mode"          yaml:"mode"`
	TotalSeconds int       `json:"total_seconds" yaml:"total_seconds"`
	Pomodoros    int       `json:"pomodoros"     yaml:"pomodoros"`
}
