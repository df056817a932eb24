package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWait(t *testing.T) {
	checkErr := errors.New("check blew up")

	tests := []struct {
		name      string
		interval  time.Duration
		timeout   time.Duration
		check     func() CheckFn
		expectErr error
	}{
		{
			name:     "immediate success",
			interval: 10 * time.Millisecond,
			timeout:  time.Second,
			check: func() CheckFn {
				return func(context.Context) (bool, error) { return true, nil }
			},
		},
		{
			name:     "succeeds after retries",
			interval: 5 * time.Millisecond,
			timeout:  time.Second,
			check: func() CheckFn {
				calls := 0
				return func(context.Context) (bool, error) {
					calls++
					return calls >= 3, nil
				}
			},
		},
		{
			name:     "check error aborts",
			interval: 5 * time.Millisecond,
			timeout:  time.Second,
			check: func() CheckFn {
				return func(context.Context) (bool, error) { return false, checkErr }
			},
			expectErr: checkErr,
		},
		{
			name:     "times out",
			interval: 5 * time.Millisecond,
			timeout:  30 * time.Millisecond,
			check: func() CheckFn {
				return func(context.Context) (bool, error) { return false, nil }
			},
			expectErr: ErrTimeout,
		},
		{
			name:     "invalid interval",
			interval: 0,
			timeout:  time.Second,
			check: func() CheckFn {
				return func(context.Context) (bool, error) { return true, nil }
			},
			expectErr: ErrInvalidInterval,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wait(context.Background(), tt.interval, tt.timeout, tt.check())
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWaitHonorsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := Wait(ctx, 5*time.Millisecond, 0, func(context.Context) (bool, error) {
		return false, nil
	})
	require.ErrorIs(t, err, context.Canceled)
}
