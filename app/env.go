package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focustab/focusmode"
	"github.com/ayoisaiah/focustab/internal/config"
	"github.com/ayoisaiah/focustab/internal/logging"
	"github.com/ayoisaiah/focustab/internal/pathutil"
	"github.com/ayoisaiah/focustab/internal/static"
	"github.com/ayoisaiah/focustab/internal/ui"
	"github.com/ayoisaiah/focustab/notify"
	"github.com/ayoisaiah/focustab/sound"
	"github.com/ayoisaiah/focustab/store"
)

const (
	redisPrefix    = "focustab:"
	restoreTimeout = 5 * time.Second
)

// env holds what every command needs: the configuration, the log file, and
// (once opened) the store.
type env struct {
	cfg   *config.Config
	log   *logging.Logger
	store store.Store
}

// load reads the configuration and opens the log file. The first-run
// prompt is only shown when prompt is set.
func load(ctx *cli.Context, prompt bool) (*env, error) {
	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	// validated by config.New
	level, _ := cfg.LogLevel()

	l, err := logging.New(pathutil.LogFilePath(), level)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l.Logger)

	ui.DarkTheme = cfg.Display.DarkTheme

	return &env{cfg: cfg, log: l}, nil
}

// openStore connects to the configured store.
func (e *env) openStore() error {
	sqlitePath := e.cfg.Storage.SQLitePath
	if sqlitePath == "" {
		sqlitePath = pathutil.SQLiteFilePath()
	}

	s, err := store.Open(store.Options{
		Driver:      e.cfg.Storage.Driver,
		BoltPath:    pathutil.DBFilePath(),
		SQLitePath:  sqlitePath,
		RedisAddr:   e.cfg.Storage.RedisAddr,
		RedisPrefix: redisPrefix,
	})
	if err != nil {
		return err
	}

	e.store = s

	return nil
}

func (e *env) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.log.Warn("unable to close store", slog.Any("error", err))
		}
	}

	_ = e.log.Close()
}

// soundFile resolves the configured chime. Bare file names are looked up
// in the sound directory.
func (e *env) soundFile() string {
	f := e.cfg.Settings.SoundFile
	if f == "" || filepath.IsAbs(f) {
		return f
	}

	return filepath.Join(pathutil.SoundDir(), f)
}

// controller builds the focus controller and restores the persisted
// session. Settings given on the command line are applied on top of the
// restored ones.
func (e *env) controller(ctx context.Context) (*focusmode.Controller, error) {
	icon := filepath.Join(pathutil.DataDir(), static.IconFile)

	ctrl := focusmode.New(
		focusmode.WithStore(e.store),
		focusmode.WithChime(sound.NewPlayer(e.soundFile())),
		focusmode.WithNotifier(
			notify.NewDesktop(e.cfg.Notifications.Enabled, icon),
		),
		focusmode.WithSettings(e.cfg.FocusSettings()),
		focusmode.WithTimerMode(e.cfg.TimerMode()),
		focusmode.WithSessionCmd(e.cfg.Settings.Cmd),
		focusmode.WithLogger(e.log.Logger),
	)

	restoreCtx, cancel := context.WithTimeout(ctx, restoreTimeout)
	defer cancel()

	err := ctrl.Restore(restoreCtx)
	if err != nil {
		ctrl.Close()
		return nil, errRestore.Wrap(err)
	}

	ctrl.UpdateSettings(e.cfg.CLI.Patch)

	if e.cfg.CLI.TimerMode != "" {
		ctrl.SetTimerMode(e.cfg.CLI.TimerMode)
	}

	return ctrl, nil
}
