package focusmode

import (
	"context"
	"time"
)

// Drive ticks c once per interval until ctx is cancelled. Ticks are only
// delivered while the session is active and its timer is running.
func Drive(ctx context.Context, c *Controller, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.Ticking() {
				c.Tick()
			}
		}
	}
}
