package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/internal/timeutil"
)

const (
	noSessionMsg = "No focus session in progress"
	dateFormat   = "Jan 02, 2006 03:04 PM"
)

// status is the persisted session as reported by the status command.
type status struct {
	State          *models.FocusState `json:"state"`
	InProgress     bool               `json:"in_progress"`
	ElapsedSeconds int                `json:"elapsed_seconds"`
}

func newStatus(s *models.FocusState, now time.Time) status {
	st := status{State: s}

	if s == nil || s.SessionStartTime.IsZero() {
		return st
	}

	st.InProgress = true
	st.ElapsedSeconds = max(int(now.Sub(s.SessionStartTime)/time.Second), 0)

	return st
}

// writeStatus prints st as aligned plain text with times shown in loc.
func writeStatus(w io.Writer, st status, loc *time.Location) error {
	if !st.InProgress {
		_, err := fmt.Fprintln(w, noSessionMsg)
		return err
	}

	s := st.State

	var b strings.Builder

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	if s.FocusTask != "" {
		fmt.Fprintf(tw, "Task:\t%s\n", s.FocusTask)
	}

	fmt.Fprintf(tw, "Mode:\t%s\n", s.TimerMode)
	fmt.Fprintf(tw, "Started:\t%s\n", s.SessionStartTime.In(loc).Format(dateFormat))
	fmt.Fprintf(tw, "Elapsed:\t%s\n", timeutil.FormatDuration(st.ElapsedSeconds))

	if s.TimerMode == models.ModePomodoro {
		fmt.Fprintf(tw, "Pomodoros:\t%d\n", s.PomodorosCompleted)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeStatusJSON(w io.Writer, st status) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(st)
}
