// Package ui holds the terminal styling shared by the CLI reports
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each color so that they remain
// readable on dark terminal backgrounds.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}
