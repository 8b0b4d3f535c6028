package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

func TestFakeFiresInDeadlineOrder(t *testing.T) {
	c := NewFake(epoch)

	var got []string

	c.AfterFunc(300*time.Millisecond, func() { got = append(got, "c") })
	c.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(200*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(250 * time.Millisecond)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, epoch.Add(250*time.Millisecond), c.Now())
	assert.Equal(t, 1, c.Pending())

	c.Advance(time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, c.Pending())
}

func TestFakeStop(t *testing.T) {
	c := NewFake(epoch)

	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(2 * time.Second)

	assert.False(t, fired)
}

func TestFakeChainedTimers(t *testing.T) {
	c := NewFake(epoch)

	var at []time.Time

	c.AfterFunc(time.Second, func() {
		at = append(at, c.Now())

		c.AfterFunc(time.Second, func() {
			at = append(at, c.Now())
		})
	})

	c.Advance(5 * time.Second)

	assert.Equal(t, []time.Time{
		epoch.Add(time.Second),
		epoch.Add(2 * time.Second),
	}, at)
	assert.Equal(t, epoch.Add(5*time.Second), c.Now())
}
