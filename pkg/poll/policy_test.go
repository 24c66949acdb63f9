package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testPolicy(maxAttempts int, waits *[]time.Duration) Policy {
	return Policy{
		Interval:    time.Second,
		MaxAttempts: maxAttempts,
		MaxBackoff:  8 * time.Second,
		sleep: func(ctx context.Context, d time.Duration) error {
			*waits = append(*waits, d)
			return nil
		},
	}
}

func TestRun_StopsWhenDone(t *testing.T) {
	var waits []time.Duration
	calls := 0

	err := testPolicy(10, &waits).Run(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, waits)
}

func TestRun_ExhaustsAttempts(t *testing.T) {
	var waits []time.Duration
	calls := 0

	err := testPolicy(4, &waits).Run(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		return false, nil
	})

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 4, calls)
	// No sleep after the final attempt.
	assert.Len(t, waits, 3)
}

func TestRun_BacksOffOnTransient(t *testing.T) {
	var waits []time.Duration
	calls := 0

	err := testPolicy(6, &waits).Run(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		if calls < 5 {
			return false, Transient{Err: errors.New("gateway timeout")}
		}
		return true, nil
	})

	assert.NoError(t, err)
	// 1s doubles each transient failure, capped at 8s.
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second, 8 * time.Second}, waits)
}

func TestRun_ResetsBackoffAfterSuccess(t *testing.T) {
	var waits []time.Duration
	calls := 0

	err := testPolicy(5, &waits).Run(context.Background(), func(ctx context.Context) (bool, error) {
		calls++
		if calls == 1 {
			return false, Transient{Err: errors.New("blip")}
		}
		return calls == 3, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []time.Duration{2 * time.Second, time.Second}, waits)
}

func TestRun_HardErrorAborts(t *testing.T) {
	var waits []time.Duration
	boom := errors.New("invalid order")

	err := testPolicy(5, &waits).Run(context.Background(), func(ctx context.Context) (bool, error) {
		return false, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, waits)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := Policy{
		Interval:    time.Second,
		MaxAttempts: 5,
		MaxBackoff:  8 * time.Second,
		sleep: func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		},
	}

	err := p.Run(ctx, func(ctx context.Context) (bool, error) {
		return false, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
