package app

import "github.com/urfave/cli/v2"

var (
	focusFlag = &cli.IntFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus interval length in minutes (default: 25)",
	}

	breakFlag = &cli.IntFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Break length in minutes (default: 5)",
	}

	modeFlag = &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "Timer mode: pomodoro or countup",
	}

	disableSoundFlag = &cli.BoolFlag{
		Name:  "disable-sound",
		Usage: "Do not play a chime when an interval ends",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when an interval ends",
	}

	autoStartFlag = &cli.BoolFlag{
		Name:  "auto-start",
		Usage: "Start the next interval automatically",
	}

	hideSecondsFlag = &cli.BoolFlag{
		Name:  "hide-seconds",
		Usage: "Show the timer in whole minutes",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each interval",
	}

	driverFlag = &cli.StringFlag{
		Name:  "driver",
		Usage: "Storage driver: bolt, sqlite, or redis",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	addrFlag = &cli.StringFlag{
		Name:  "addr",
		Usage: "Address for the HTTP API (default: 127.0.0.1:7878)",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start of the reporting period (e.g. '2 days ago'). Defaults to 7 days ago",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format: table, json, or yaml",
		Value: formatTable,
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)
