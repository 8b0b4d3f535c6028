// Package app wires the focustab command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focustab/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the focustab app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focustab",
		Usage: `
		focustab runs the focus mode of your new tab page. Enter focus mode
		from the terminal, or serve it to the browser over a local API.`,
		UsageText:            "[COMMAND] [OPTIONS] [TASK...]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the focus session to the browser over HTTP",
				Flags:  []cli.Flag{addrFlag},
				Action: serveAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the focus session",
				Flags:  []cli.Flag{jsonFlag},
				Action: statusAction,
			},
			{
				Name: "history",
				Usage: `
				Summarise finished focus sessions. Defaults to a reporting
				period of 7 days`,
				Flags:  []cli.Flag{sinceFlag, formatFlag},
				Action: historyAction,
			},
			{
				Name:   "reset",
				Usage:  "Discard the persisted focus session",
				Action: resetAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the sound files that can be used as the chime",
				Action: soundsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			focusFlag,
			breakFlag,
			modeFlag,
			disableSoundFlag,
			disableNotificationFlag,
			autoStartFlag,
			hideSecondsFlag,
			sessionCmdFlag,
			driverFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
