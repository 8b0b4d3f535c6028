// Package stats summarises the history of finished focus sessions
package stats

import (
	"slices"
	"time"

	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/internal/timeutil"
)

// Day is the focus time logged on one calendar day.
type Day struct {
	Date    string `json:"date"    yaml:"date"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}

// Summary aggregates the sessions of a reporting period.
type Summary struct {
	Start          time.Time `json:"start"           yaml:"start"`
	End            time.Time `json:"end"             yaml:"end"`
	Days           []Day     `json:"days"            yaml:"days"`
	Sessions       int       `json:"sessions"        yaml:"sessions"`
	Pomodoros      int       `json:"pomodoros"       yaml:"pomodoros"`
	TotalSeconds   int       `json:"total_seconds"   yaml:"total_seconds"`
	AverageSeconds int       `json:"average_seconds" yaml:"average_seconds"`
	LongestSeconds int       `json:"longest_seconds" yaml:"longest_seconds"`
}

// Compute summarises the records that started within [start, end]. Days
// without any focus time inside the period are included with zero minutes.
func Compute(records []*models.SessionRecord, start, end time.Time) Summary {
	s := Summary{
		Start: start,
		End:   end,
	}

	perDay := make(map[string]int)

	for _, r := range filterSessions(records) {
		if r.StartTime.Before(start) || r.StartTime.After(end) {
			continue
		}

		s.Sessions++
		s.Pomodoros += r.Pomodoros
		s.TotalSeconds += r.TotalSeconds
		s.LongestSeconds = max(s.LongestSeconds, r.TotalSeconds)

		perDay[timeutil.DayKey(r.StartTime.In(start.Location()))] += r.TotalSeconds
	}

	if s.Sessions > 0 {
		s.AverageSeconds = timeutil.Round(
			float64(s.TotalSeconds) / float64(s.Sessions),
		)
	}

	s.Days = days(perDay, start, end)

	return s
}

// days lists every calendar day in the period in order.
func days(perDay map[string]int, start, end time.Time) []Day {
	if end.Before(start) {
		return nil
	}

	var out []Day

	for d := timeutil.RoundToStart(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		key := timeutil.DayKey(d)

		out = append(out, Day{
			Date:    key,
			Minutes: timeutil.Round(float64(perDay[key]) / 60),
		})
	}

	return out
}

// filterSessions ensures that sessions with an invalid end date are ignored.
func filterSessions(records []*models.SessionRecord) []*models.SessionRecord {
	return slices.DeleteFunc(slices.Clone(records), func(r *models.SessionRecord) bool {
		return r.EndTime.IsZero() || r.EndTime.Before(r.StartTime)
	})
}
