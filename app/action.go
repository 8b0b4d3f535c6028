package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focustab/focusmode"
	"github.com/ayoisaiah/focustab/internal/config"
	"github.com/ayoisaiah/focustab/internal/osutil"
	"github.com/ayoisaiah/focustab/internal/pathutil"
	"github.com/ayoisaiah/focustab/internal/static"
	"github.com/ayoisaiah/focustab/internal/timeutil"
	"github.com/ayoisaiah/focustab/internal/ui"
	"github.com/ayoisaiah/focustab/report"
	"github.com/ayoisaiah/focustab/server"
	"github.com/ayoisaiah/focustab/sound"
	"github.com/ayoisaiah/focustab/stats"
	"github.com/ayoisaiah/focustab/store"
	"github.com/ayoisaiah/focustab/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envFocusTabNoColor = "FOCUSTAB_NO_COLOR"

	tickInterval = time.Second

	// historyDays is the default reporting period of the history command.
	historyDays = 7
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// defaultAction enters focus mode and runs the terminal UI. A session that
// was interrupted is resumed instead.
func defaultAction(ctx *cli.Context) error {
	e, err := load(ctx, true)
	if err != nil {
		return err
	}

	defer e.close()

	if err = e.openStore(); err != nil {
		return err
	}

	ctrl, err := e.controller(ctx.Context)
	if err != nil {
		return err
	}

	defer ctrl.Close()

	ctrl.EnterFocusMode(e.cfg.CLI.Label)

	p := tea.NewProgram(timer.New(
		ctrl,
		timer.WithLogger(e.log.Logger),
		timer.WithDarkTheme(e.cfg.Display.DarkTheme),
	))

	_, err = p.Run()

	return err
}

// serveAction serves the focus session over HTTP until interrupted.
func serveAction(ctx *cli.Context) error {
	e, err := load(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	if err = e.openStore(); err != nil {
		return err
	}

	ctrl, err := e.controller(ctx.Context)
	if err != nil {
		return err
	}

	defer ctrl.Close()

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	go focusmode.Drive(sigCtx, ctrl, tickInterval)

	srv := server.New(
		ctrl,
		server.WithHistory(e.store),
		server.WithLogger(e.log.Logger),
		server.WithAllowedOrigins(e.cfg.Server.AllowedOrigins),
	)

	report.Serving(e.cfg.Server.Addr)

	return srv.ListenAndServe(sigCtx, e.cfg.Server.Addr)
}

// statusAction prints the persisted focus session.
func statusAction(ctx *cli.Context) error {
	e, err := load(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	err = e.openStore()
	if errors.Is(err, store.ErrInUse) {
		pterm.Info.Println(
			"focustab is running in another process; its status is not readable until it exits",
		)

		return nil
	}

	if err != nil {
		return err
	}

	state, err := e.store.LoadState(ctx.Context)
	if err != nil {
		return err
	}

	st := newStatus(state, time.Now())

	if e.cfg.CLI.JSON {
		return writeStatusJSON(config.Stdout, st)
	}

	return writeStatus(config.Stdout, st, time.Local)
}

// historyAction summarises the sessions of the reporting period.
func historyAction(ctx *cli.Context) error {
	e, err := load(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	format := e.cfg.CLI.Format
	if err = validFormat(format); err != nil {
		return err
	}

	if err = e.openStore(); err != nil {
		return err
	}

	now := time.Now()
	end := timeutil.RoundToEnd(now)

	start := e.cfg.CLI.Since
	if start.IsZero() {
		start = timeutil.RoundToStart(now.AddDate(0, 0, -(historyDays - 1)))
	}

	sessions, err := e.store.Sessions(ctx.Context, start, end)
	if err != nil {
		return errReadHistory.Wrap(err)
	}

	return writeHistory(
		config.Stdout,
		format,
		sessions,
		stats.Compute(sessions, start, end),
	)
}

// resetAction discards the persisted focus session. Settings are discarded
// too, so the config file applies again on the next run.
func resetAction(ctx *cli.Context) error {
	e, err := load(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	if err = e.openStore(); err != nil {
		return err
	}

	if err = e.store.ClearState(ctx.Context); err != nil {
		return err
	}

	report.SessionReset()

	return nil
}

// soundsAction lists the chime files found in the sound directory.
func soundsAction(_ *cli.Context) error {
	dir := pathutil.SoundDir()

	names, err := sound.Sounds(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if len(names) == 0 {
		pterm.Info.Printfln("No sound files found in %s", dir)
		return nil
	}

	tableBody := [][]string{{"NAME", "FILE"}}

	for _, name := range names {
		tableBody = append(tableBody, []string{
			pathutil.StripExtension(name),
			name,
		})
	}

	ui.PrintTable(tableBody, config.Stdout)

	pterm.Info.Println(
		"Set settings.sound_file to one of these files to use it as the chime",
	)

	return nil
}

// editConfigAction handles the edit-config command which opens the focustab
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	err := cmd.Run()
	if err != nil {
		return errEditConfig.Fmt(editor).Wrap(err)
	}

	return nil
}

// noColor reports whether styled output should be disabled.
func noColor(ctx *cli.Context) bool {
	if _, exists := os.LookupEnv(envNoColor); exists {
		return true
	}

	if _, exists := os.LookupEnv(envFocusTabNoColor); exists {
		return true
	}

	if ctx.Bool("no-color") {
		return true
	}

	fd := os.Stdout.Fd()

	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/focustab/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if noColor(ctx) {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	return static.Install(pathutil.DataDir())
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting focustab")

	return nil
}
