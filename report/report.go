// Package report prints user facing messages for the CLI
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focustab/internal/osutil"
)

func SessionReset() {
	pterm.Success.Println("focus session reset")
}

func Serving(addr string) {
	pterm.Info.Printfln("Serving focus mode on http://%s", addr)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
