// Package lock serializes billing writes per unit across processes.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
)

const keyPrefix = "billing:unit-lock:"

// ReleaseFunc releases a held lock. Releasing a lock that already expired is not an error.
type ReleaseFunc = func(ctx context.Context) error

// Options control lock expiry and how long Acquire waits for a busy unit.
type Options struct {
	TTL           time.Duration
	WaitTimeout   time.Duration
	RetryInterval time.Duration
}

// DefaultOptions returns the defaults used when config leaves them unset.
func DefaultOptions() Options {
	return Options{
		TTL:           30 * time.Second,
		WaitTimeout:   5 * time.Second,
		RetryInterval: 50 * time.Millisecond,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TTL <= 0 {
		o.TTL = d.TTL
	}
	if o.WaitTimeout < 0 {
		o.WaitTimeout = d.WaitTimeout
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = d.RetryInterval
	}
	return o
}

// UnitKey returns the lock key for one unit of one tenant.
func UnitKey(tenantID, unitID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, tenantID, unitID)
}

// tryFunc attempts the lock once, reporting whether it was taken.
type tryFunc func(ctx context.Context) (bool, error)

// acquire retries try until it succeeds, the wait budget runs out, or ctx ends.
func acquire(ctx context.Context, key string, opts Options, try tryFunc) error {
	deadline := time.Now().Add(opts.WaitTimeout)
	for {
		ok, err := try(ctx)
		if err != nil {
			return fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return nil
		}
		if !time.Now().Before(deadline) {
			return shared.NewConcurrencyError("unit is busy with another billing operation, retry later", nil)
		}

		wait := opts.RetryInterval
		if remaining := time.Until(deadline); remaining < wait {
			wait = remaining
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return shared.NewConcurrencyError("gave up waiting for unit lock", ctx.Err())
		case <-timer.C:
		}
	}
}
