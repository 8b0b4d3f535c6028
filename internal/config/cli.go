package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	set map[string]bool

	Since         string
	Format        string
	Label         string
	Mode          string
	SessionCmd    string
	Driver        string
	Addr          string
	Focus         int
	Break         int
	DisableSound  bool
	DisableNotify bool
	AutoStart     bool
	HideSeconds   bool
	JSON          bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			set:           make(map[string]bool),
			Focus:         ctx.Int("focus"),
			Break:         ctx.Int("break"),
			Mode:          ctx.String("mode"),
			SessionCmd:    ctx.String("session-cmd"),
			Driver:        ctx.String("driver"),
			Addr:          ctx.String("addr"),
			Since:         ctx.String("since"),
			Format:        ctx.String("format"),
			DisableSound:  ctx.Bool("disable-sound"),
			DisableNotify: ctx.Bool("disable-notification"),
			AutoStart:     ctx.Bool("auto-start"),
			HideSeconds:   ctx.Bool("hide-seconds"),
			JSON:          ctx.Bool("json"),
			Label:         strings.Join(ctx.Args().Slice(), " "),
		}

		for _, name := range []string{"focus", "break", "mode"} {
			opts.set[name] = ctx.IsSet(name)
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config. Settings that the
// focus session also persists are recorded as a patch so that they can be
// applied on top of the restored session.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	c.CLI.Label = strings.TrimSpace(opts.Label)
	c.CLI.Format = opts.Format
	c.CLI.JSON = opts.JSON

	if opts.set["focus"] {
		focus := opts.Focus
		c.Focus.Duration = focus
		c.CLI.Patch.FocusDuration = &focus
	}

	if opts.set["break"] {
		brk := opts.Break
		c.Break.Duration = brk
		c.CLI.Patch.BreakDuration = &brk
	}

	if opts.set["mode"] {
		mode := models.TimerMode(opts.Mode)
		if !mode.Valid() {
			return errInvalidTimerMode.Fmt(opts.Mode)
		}

		c.Settings.TimerMode = opts.Mode
		c.CLI.TimerMode = mode
	}

	if opts.DisableSound {
		disabled := false
		c.Settings.Sound = false
		c.CLI.Patch.SoundEnabled = &disabled
	}

	if opts.DisableNotify {
		disabled := false
		c.Notifications.Enabled = false
		c.CLI.Patch.NotificationsEnabled = &disabled
	}

	if opts.AutoStart {
		enabled := true
		c.Settings.AutoStart = true
		c.CLI.Patch.AutoStartTimers = &enabled
	}

	if opts.HideSeconds {
		enabled := true
		c.Settings.HideSeconds = true
		c.CLI.Patch.HideSeconds = &enabled
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Driver != "" {
		c.Storage.Driver = opts.Driver
	}

	if opts.Addr != "" {
		c.Server.Addr = opts.Addr
	}

	if opts.Since != "" {
		since, err := timeutil.FromStr(opts.Since, now)
		if err != nil {
			return errInvalidSince.Fmt(opts.Since).Wrap(err)
		}

		c.CLI.Since = since
	}

	return nil
}
