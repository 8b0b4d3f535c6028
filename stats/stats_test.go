package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focustab/internal/models"
)

var day = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

func rec(start time.Time, seconds, pomodoros int) *models.SessionRecord {
	return &models.SessionRecord{
		StartTime:    start,
		EndTime:      start.Add(time.Duration(seconds) * time.Second),
		TotalSeconds: seconds,
		Pomodoros:    pomodoros,
	}
}

func TestCompute(t *testing.T) {
	records := []*models.SessionRecord{
		rec(day.Add(9*time.Hour), 1500, 1),
		rec(day.Add(14*time.Hour), 3000, 2),
		rec(day.Add(33*time.Hour), 600, 0),
		// outside the period
		rec(day.Add(-time.Hour), 9000, 4),
		// invalid end time
		{StartTime: day.Add(10 * time.Hour), TotalSeconds: 100},
	}

	start := day
	end := day.Add(3*24*time.Hour - time.Second)

	got := Compute(records, start, end)

	want := Summary{
		Start:          start,
		End:            end,
		Sessions:       3,
		Pomodoros:      3,
		TotalSeconds:   5100,
		AverageSeconds: 1700,
		LongestSeconds: 3000,
		Days: []Day{
			{Date: "2024-03-04", Minutes: 75},
			{Date: "2024-03-05", Minutes: 10},
			{Date: "2024-03-06", Minutes: 0},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	// the input must not be reordered or truncated
	assert.Len(t, records, 5)
	assert.Equal(t, 100, records[4].TotalSeconds)
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil, day, day.Add(time.Hour))

	assert.Zero(t, got.Sessions)
	assert.Zero(t, got.AverageSeconds)
	assert.Equal(t, []Day{{Date: "2024-03-04", Minutes: 0}}, got.Days)
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	s := Compute(
		[]*models.SessionRecord{rec(day.Add(9*time.Hour), 3900, 2)},
		day,
		day.Add(24*time.Hour-time.Second),
	)

	assert.NoError(t, Render(&buf, s))

	out := buf.String()
	assert.Contains(t, out, "Sessions: 1")
	assert.Contains(t, out, "Time logged: 1h 05m")
	assert.Contains(t, out, "2024-03-04")

	buf.Reset()

	assert.NoError(t, Render(&buf, Summary{}))
	assert.Equal(t, noSessionsMsg+"\n", buf.String())
}
