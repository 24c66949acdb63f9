package poll

import (
	"context"
	"errors"
	"time"
)

// ErrExhausted is returned when polling gives up without a terminal result.
var ErrExhausted = errors.New("polling attempts exhausted")

// Transient marks an error as retriable. Checks run into transient errors
// (gateway timeouts, 5xx) back off exponentially instead of aborting.
type Transient struct {
	Err error
}

func (t Transient) Error() string { return t.Err.Error() }
func (t Transient) Unwrap() error { return t.Err }

// CheckFunc inspects an external resource once. done=true stops polling.
type CheckFunc func(ctx context.Context) (done bool, err error)

// Policy bounds a polling loop: fixed base interval, a hard attempt cap and
// exponential backoff on transient failures. The zero value is unusable; use
// DefaultPolicy or fill every field.
type Policy struct {
	Interval    time.Duration
	MaxAttempts int
	MaxBackoff  time.Duration

	// sleep is injectable for tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy matches the order-status checker: every 5s, at most 60
// attempts (5 minutes), backoff capped at 40s.
func DefaultPolicy() Policy {
	return Policy{
		Interval:    5 * time.Second,
		MaxAttempts: 60,
		MaxBackoff:  40 * time.Second,
	}
}

// Run drives check until it reports done, fails hard, or the policy is
// exhausted. Transient errors double the wait up to MaxBackoff; a successful
// check resets it to the base interval.
func (p Policy) Run(ctx context.Context, check CheckFunc) error {
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	wait := p.Interval
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		done, err := check(ctx)
		if err != nil {
			var tr Transient
			if !errors.As(err, &tr) {
				return err
			}
			wait *= 2
			if wait > p.MaxBackoff {
				wait = p.MaxBackoff
			}
		} else {
			if done {
				return nil
			}
			wait = p.Interval
		}

		if attempt == p.MaxAttempts {
			break
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}

	return ErrExhausted
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
