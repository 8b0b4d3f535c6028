// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// keyLayout is a fixed width layout so that keys sort in time order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	val = max(val, 0)

	return val / secondsInAMinute, val % secondsInAMinute
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatClock formats a seconds value as MM:SS, or as MM when hideSeconds is
// set. Minutes are not wrapped into hours.
func FormatClock(seconds int, hideSeconds bool) string {
	m, s := SecsToMinsAndSecs(seconds)

	if hideSeconds {
		return fmt.Sprintf("%02dm", m)
	}

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatDuration renders a seconds value as a short human readable string
// such as "1h 05m" or "12m".
func FormatDuration(seconds int) string {
	hrs, mins := MinsToHoursAndMins(max(seconds, 0) / secondsInAMinute)

	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// DayKey formats t as the calendar day it falls on.
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}

// FromStr parses an absolute or relative date such as "2 days ago" or
// "2024-03-01" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	d, err := dps.Parse(cfg, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return d.Time, nil
}
