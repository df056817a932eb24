// Package poll waits for a condition checked by repeated calls to a
// management API, the way command line waiters do.
package poll

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidInterval = errors.New("interval must be greater than 0")
	ErrTimeout         = errors.New("timed out waiting for condition")
)

// CheckFn reports whether the awaited condition holds. A non-nil error
// aborts the wait.
type CheckFn func(ctx context.Context) (bool, error)

// Wait calls check every interval until it returns true, the timeout
// elapses, or the context is canceled. The first check runs immediately.
// A timeout of 0 means wait until the context is done.
func Wait(ctx context.Context, interval, timeout time.Duration, check CheckFn) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrTimeout
			}
			return ctx.Err()
		}
	}
}
