package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustab/internal/models"
)

func TestApplyCLIOptions(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	c := &Config{}
	c.Settings.Sound = true
	c.Notifications.Enabled = true

	opts := CLIOptions{
		set: map[string]bool{
			"focus": true,
			"mode":  true,
		},
		Focus:        45,
		Break:        15,
		Mode:         "countup",
		DisableSound: true,
		Since:        "2024-03-01",
		Label:        " write report ",
		JSON:         true,
	}

	err := applyCLIOptions(c, opts, now)
	require.NoError(t, err)

	assert.Equal(t, "write report", c.CLI.Label)
	assert.True(t, c.CLI.JSON)
	assert.Equal(t, 45, c.Focus.Duration)
	assert.Equal(t, models.ModeCountUp, c.CLI.TimerMode)
	assert.False(t, c.Settings.Sound)
	assert.True(t, c.Notifications.Enabled)
	assert.Equal(t, 2024, c.CLI.Since.Year())
	assert.Equal(t, time.March, c.CLI.Since.Month())
	assert.Equal(t, 1, c.CLI.Since.Day())

	require.NotNil(t, c.CLI.Patch.FocusDuration)
	assert.Equal(t, 45, *c.CLI.Patch.FocusDuration)
	assert.Nil(t, c.CLI.Patch.BreakDuration, "unset flags are not patched")
	require.NotNil(t, c.CLI.Patch.SoundEnabled)
	assert.False(t, *c.CLI.Patch.SoundEnabled)
	assert.Nil(t, c.CLI.Patch.NotificationsEnabled)
}

func TestApplyCLIOptionsInvalidMode(t *testing.T) {
	c := &Config{}

	err := applyCLIOptions(c, CLIOptions{
		set:  map[string]bool{"mode": true},
		Mode: "stopwatch",
	}, time.Now())

	assert.ErrorIs(t, err, errInvalidTimerMode)
}
