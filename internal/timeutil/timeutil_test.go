package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		hide    bool
		want    string
	}{
		{1500, false, "25:00"},
		{713, false, "11:53"},
		{0, false, "00:00"},
		{-5, false, "00:00"},
		{4000, false, "66:40"},
		{713, true, "11m"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatClock(tc.seconds, tc.hide))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(30))
	assert.Equal(t, "25m", FormatDuration(1500))
	assert.Equal(t, "1h 05m", FormatDuration(3900))
}

func TestToKeySortsChronologically(t *testing.T) {
	a := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	b := a.Add(500 * time.Millisecond)
	c := a.Add(time.Second)

	assert.Less(t, string(ToKey(a)), string(ToKey(b)))
	assert.Less(t, string(ToKey(b)), string(ToKey(c)))

	loc := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, ToKey(a), ToKey(a.In(loc)))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2 days ago", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 8, got.Day())

	got, err = FromStr("2024-02-01", now)
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 1, got.Day())

	_, err = FromStr("not a date at all", now)
	assert.Error(t, err)
}

func TestRoundToStartAndEnd(t *testing.T) {
	ts := time.Date(2024, 1, 1, 13, 45, 10, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), RoundToStart(ts))
	assert.Equal(t, time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC), RoundToEnd(ts))
	assert.Equal(t, "2024-01-01", DayKey(ts))
}
