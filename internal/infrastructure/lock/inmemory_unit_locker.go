package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type lease struct {
	token     string
	expiresAt time.Time
}

// InMemoryUnitLocker implements the per-unit lock inside one process.
// It has the same expiry semantics as RedisUnitLocker but shares no state
// across instances, so it is only valid for single-instance deployments.
type InMemoryUnitLocker struct {
	mu     sync.Mutex
	leases map[string]lease
	opts   Options
}

// NewInMemoryUnitLocker creates an in-memory locker.
func NewInMemoryUnitLocker(opts Options) *InMemoryUnitLocker {
	return &InMemoryUnitLocker{
		leases: make(map[string]lease),
		opts:   opts.withDefaults(),
	}
}

// Acquire blocks until the unit's lock is held or the wait budget is spent.
func (l *InMemoryUnitLocker) Acquire(ctx context.Context, tenantID, unitID uuid.UUID) (ReleaseFunc, error) {
	key := UnitKey(tenantID, unitID)
	token := uuid.NewString()

	err := acquire(ctx, key, l.opts, func(context.Context) (bool, error) {
		l.mu.Lock()
		defer l.mu.Unlock()

		now := time.Now()
		if held, ok := l.leases[key]; ok && now.Before(held.expiresAt) {
			return false, nil
		}
		l.leases[key] = lease{token: token, expiresAt: now.Add(l.opts.TTL)}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if held, ok := l.leases[key]; ok && held.token == token {
			delete(l.leases, key)
		}
		return nil
	}, nil
}
