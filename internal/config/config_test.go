package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustab/internal/config"
	"github.com/ayoisaiah/focustab/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig(path string) *config.Config {
	return &config.Config{
		Focus: config.DurationConfig{Duration: 25},
		Break: config.DurationConfig{Duration: 5},
		Settings: config.SettingsConfig{
			TimerMode: "pomodoro",
			Sound:     true,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Storage: config.StorageConfig{
			Driver:    "bolt",
			RedisAddr: "localhost:6379",
		},
		Server: config.ServerConfig{
			Addr: "127.0.0.1:7878",
			AllowedOrigins: []string{
				"chrome-extension://*",
				"moz-extension://*",
			},
		},
		Log: config.LogConfig{
			Level: "info",
		},
		Path: path,
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(configPath), cfg)
	assert.FileExists(t, configPath)

	// reading the file that was just written yields the same values
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := &config.Config{
		Focus: config.DurationConfig{Duration: 50},
		Break: config.DurationConfig{Duration: 10},
		Settings: config.SettingsConfig{
			TimerMode:   "countup",
			Cmd:         "notify-send done",
			AutoStart:   true,
			HideSeconds: true,
		},
		Storage: config.StorageConfig{
			Driver:     "sqlite",
			RedisAddr:  "localhost:6379",
			SQLitePath: "/tmp/focustab.db",
		},
		Server: config.ServerConfig{
			Addr:           "127.0.0.1:9000",
			AllowedOrigins: []string{"chrome-extension://abc"},
		},
		Log: config.LogConfig{
			Level: "debug",
		},
		Path: configPath,
	}

	assert.Equal(t, want, cfg)

	settings := cfg.FocusSettings()
	assert.Equal(t, 50, settings.FocusDuration)
	assert.False(t, settings.SoundEnabled)
	assert.False(t, settings.NotificationsEnabled)
	assert.Equal(t, "countup", string(cfg.TimerMode()))
}

func TestValidation(t *testing.T) {
	testCases := []struct {
		Name   string
		Config string
	}{
		{
			Name:   "focus duration too long",
			Config: "focus:\n  duration: 721\n",
		},
		{
			Name:   "zero break duration",
			Config: "break:\n  duration: 0\n",
		},
		{
			Name:   "unknown timer mode",
			Config: "settings:\n  timer_mode: stopwatch\n",
		},
		{
			Name:   "unsupported sound file",
			Config: "settings:\n  sound_file: /tmp/chime.aiff\n",
		},
		{
			Name:   "unknown storage driver",
			Config: "storage:\n  driver: postgres\n",
		},
		{
			Name:   "redis without address",
			Config: "storage:\n  driver: redis\n  redis_addr: \"\"\n",
		},
		{
			Name:   "unknown log level",
			Config: "log:\n  level: verbose\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			err := os.WriteFile(configPath, []byte(tc.Config), 0o600)
			require.NoError(t, err)

			_, err = config.New(config.WithViperConfig(configPath))
			assert.Error(t, err)
		})
	}
}
