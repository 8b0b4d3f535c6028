package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focustab/internal/timeutil"
	"github.com/ayoisaiah/focustab/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
)

// Render writes a human readable report of s to w.
func Render(w io.Writer, s Summary) error {
	if s.Sessions == 0 {
		_, err := fmt.Fprintln(w, noSessionsMsg)
		return err
	}

	var b strings.Builder

	b.WriteString(ui.Blue("Summary") + "\n")
	fmt.Fprintf(
		&b,
		"%s → %s\n",
		s.Start.Format(time.DateOnly),
		s.End.Format(time.DateOnly),
	)
	fmt.Fprintln(&b, "Sessions:", ui.Green(s.Sessions))
	fmt.Fprintln(&b, "Pomodoros:", ui.Green(s.Pomodoros))
	fmt.Fprintln(&b, "Time logged:", ui.Green(timeutil.FormatDuration(s.TotalSeconds)))
	fmt.Fprintln(&b, "Average session:", ui.Green(timeutil.FormatDuration(s.AverageSeconds)))
	fmt.Fprintln(&b, "Longest session:", ui.Green(timeutil.FormatDuration(s.LongestSeconds)))

	b.WriteString(barChart(s.Days))

	_, err := fmt.Fprintln(w, b.String())

	return err
}

func barChart(days []Day) string {
	if len(days) == 0 {
		return ""
	}

	header := ui.Blue("\nDaily breakdown (minutes)")

	bars := make(pterm.Bars, 0, len(days))

	for _, d := range days {
		bars = append(bars, pterm.Bar{
			Value: d.Minutes,
			Label: d.Date,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}
