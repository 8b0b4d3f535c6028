// Package config loads focustab settings from the config file, first-run
// prompts, and command-line flags
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/focustab/focusmode"
	"github.com/ayoisaiah/focustab/internal/models"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Focus         DurationConfig     `mapstructure:"focus"`
		Break         DurationConfig     `mapstructure:"break"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Storage       StorageConfig      `mapstructure:"storage"`
		Server        ServerConfig       `mapstructure:"server"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
		Path          string             `mapstructure:"-"`
	}

	// DurationConfig holds the length of an interval in minutes.
	DurationConfig struct {
		Duration int `mapstructure:"duration"`
	}

	// SettingsConfig holds timer behaviour.
	SettingsConfig struct {
		TimerMode   string `mapstructure:"timer_mode"`
		SoundFile   string `mapstructure:"sound_file"`
		Cmd         string `mapstructure:"cmd"`
		Sound       bool   `mapstructure:"sound"`
		AutoStart   bool   `mapstructure:"auto_start"`
		HideSeconds bool   `mapstructure:"hide_seconds"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// StorageConfig selects where the session is persisted.
	StorageConfig struct {
		Driver     string `mapstructure:"driver"`
		RedisAddr  string `mapstructure:"redis_addr"`
		SQLitePath string `mapstructure:"sqlite_path"`
	}

	// ServerConfig configures the HTTP API.
	ServerConfig struct {
		Addr           string   `mapstructure:"addr"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	}

	// LogConfig configures the log file.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only apply to the current run.
	CLIConfig struct {
		Since     time.Time
		Label     string
		Format    string
		TimerMode models.TimerMode
		Patch     focusmode.SettingsPatch
		JSON      bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// FocusSettings returns the configured defaults for the focus session.
func (c *Config) FocusSettings() models.Settings {
	return models.Settings{
		FocusDuration:        c.Focus.Duration,
		BreakDuration:        c.Break.Duration,
		SoundEnabled:         c.Settings.Sound,
		AutoStartTimers:      c.Settings.AutoStart,
		HideSeconds:          c.Settings.HideSeconds,
		NotificationsEnabled: c.Notifications.Enabled,
	}
}

// TimerMode returns the configured timer mode.
func (c *Config) TimerMode() models.TimerMode {
	return models.TimerMode(c.Settings.TimerMode)
}
