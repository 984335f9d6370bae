// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Clock supplies the current time. The observer takes a Clock so tests can
// drive finalization ages deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
