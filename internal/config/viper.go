package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/store"
)

const (
	keyFocusDuration        = "focus.duration"
	keyBreakDuration        = "break.duration"
	keyTimerMode            = "settings.timer_mode"
	keySound                = "settings.sound"
	keySoundFile            = "settings.sound_file"
	keyAutoStart            = "settings.auto_start"
	keyHideSeconds          = "settings.hide_seconds"
	keySessionCmd           = "settings.cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyStorageDriver        = "storage.driver"
	keyRedisAddr            = "storage.redis_addr"
	keySQLitePath           = "storage.sqlite_path"
	keyServerAddr           = "server.addr"
	keyAllowedOrigins       = "server.allowed_origins"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with the default values
// and whatever earlier options (such as the first-run prompt) have set.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.Path = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	defaults := models.DefaultSettings()

	v.SetDefault(keyFocusDuration, defaults.FocusDuration)
	v.SetDefault(keyBreakDuration, defaults.BreakDuration)
	v.SetDefault(keyTimerMode, string(models.ModePomodoro))
	v.SetDefault(keySound, defaults.SoundEnabled)
	v.SetDefault(keySoundFile, "")
	v.SetDefault(keyAutoStart, defaults.AutoStartTimers)
	v.SetDefault(keyHideSeconds, defaults.HideSeconds)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNotificationsEnabled, defaults.NotificationsEnabled)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyStorageDriver, store.DriverBolt)
	v.SetDefault(keyRedisAddr, "localhost:6379")
	v.SetDefault(keySQLitePath, "")
	v.SetDefault(keyServerAddr, "127.0.0.1:7878")
	v.SetDefault(keyAllowedOrigins, []string{"chrome-extension://*", "moz-extension://*"})
	v.SetDefault(keyLogLevel, "info")

	// values chosen in the first-run prompt
	if c.Focus.Duration != 0 {
		v.Set(keyFocusDuration, c.Focus.Duration)
	}

	if c.Break.Duration != 0 {
		v.Set(keyBreakDuration, c.Break.Duration)
	}

	if c.Settings.TimerMode != "" {
		v.Set(keyTimerMode, c.Settings.TimerMode)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
