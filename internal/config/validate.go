package config

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/store"
)

var (
	// Minimum and maximum interval lengths in minutes.
	minDuration = 1
	maxDuration = 720 // 12 hours

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

	validDrivers = []string{store.DriverBolt, store.DriverSQLite, store.DriverRedis}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateDuration(c.Focus.Duration, "focus"); err != nil {
		return err
	}

	if err := validateDuration(c.Break.Duration, "break"); err != nil {
		return err
	}

	if err := c.validateSettings(); err != nil {
		return err
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

func validateDuration(minutes int, name string) error {
	if minutes < minDuration || minutes > maxDuration {
		return errInvalidDuration.Fmt(name, minDuration, maxDuration)
	}

	return nil
}

// validateSettings validates the SettingsConfig.
func (c *Config) validateSettings() error {
	if !models.TimerMode(c.Settings.TimerMode).Valid() {
		return errInvalidTimerMode.Fmt(c.Settings.TimerMode)
	}

	if c.Settings.SoundFile != "" {
		ext := strings.ToLower(filepath.Ext(c.Settings.SoundFile))
		if !slices.Contains(validSoundExts, ext) {
			return errInvalidSoundFormat.Fmt(c.Settings.SoundFile)
		}
	}

	return nil
}

func (c *Config) validateStorage() error {
	if !slices.Contains(validDrivers, c.Storage.Driver) {
		return errInvalidDriver.Fmt(c.Storage.Driver)
	}

	if c.Storage.Driver == store.DriverRedis && c.Storage.RedisAddr == "" {
		return errMissingRedisAddr
	}

	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(c.Log.Level))
	if err != nil {
		return level, errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return level, nil
}
