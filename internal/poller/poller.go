// Package poller re-runs a status check until it reports the wanted value.
package poller

import (
	"context"
	"time"
)

// Defaults for asynchronous controller operations.
const (
	Interval      = time.Second
	PowerAttempts = 120
	UIDAttempts   = 10
)

// Until calls check up to maxAttempts times and reports whether it ever
// returned target. It waits interval between attempts (not after the last
// one) without blocking other goroutines and gives up early when ctx ends.
// check is never retried on its own: a failing check should return a value
// that differs from target.
func Until[T comparable](ctx context.Context, check func(context.Context) T, target T, maxAttempts int, interval time.Duration) bool {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return false
		}
		if check(ctx) == target {
			return true
		}
		if attempt == maxAttempts {
			break
		}
		if !sleep(ctx, interval) {
			return false
		}
	}
	return false
}

// sleep waits d or until ctx is done; false means ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
