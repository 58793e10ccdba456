// Package simwait provides a context-aware artificial delay. The storefront
// has no real backend; every adapter call waits a configurable duration to
// emulate network latency. A zero duration disables the wait, which is what
// tests use.
package simwait

import (
	"context"
	"time"
)

func Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
