package app

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/internal/timeutil"
	"github.com/ayoisaiah/focustab/internal/ui"
	"github.com/ayoisaiah/focustab/stats"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type historyReport struct {
	Summary  stats.Summary           `json:"summary"  yaml:"summary"`
	Sessions []*models.SessionRecord `json:"sessions" yaml:"sessions"`
}

func validFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}

	return errInvalidFormat.Fmt(format)
}

// printSessionsTable prints a session table to w.
func printSessionsTable(w io.Writer, sessions []*models.SessionRecord) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		row := []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Local().Format(dateFormat),
			sess.EndTime.Local().Format(dateFormat),
			sess.Label,
			string(sess.Mode),
			timeutil.FormatDuration(sess.TotalSeconds),
			fmt.Sprintf("%d", sess.Pomodoros),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "START DATE", "END DATE", "TASK", "MODE", "FOCUSED", "POMODOROS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// writeHistory prints the sessions and their summary in the given format.
func writeHistory(
	w io.Writer,
	format string,
	sessions []*models.SessionRecord,
	summary stats.Summary,
) error {
	if sessions == nil {
		sessions = []*models.SessionRecord{}
	}

	report := historyReport{
		Summary:  summary,
		Sessions: sessions,
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(report)

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(report); err != nil {
			return err
		}

		return enc.Close()
	}

	if len(sessions) > 0 {
		printSessionsTable(w, sessions)
	}

	return stats.Render(w, summary)
}
