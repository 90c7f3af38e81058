package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token, so a
// holder whose lease expired cannot drop a lock someone else now owns.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisUnitLocker implements a per-unit lock with SET NX PX.
// It is safe across multiple service instances sharing one Redis.
type RedisUnitLocker struct {
	client *redis.Client
	opts   Options
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisUnitLocker creates a locker on an existing client.
func NewRedisUnitLocker(client *redis.Client, opts Options) *RedisUnitLocker {
	return &RedisUnitLocker{client: client, opts: opts.withDefaults()}
}

// Acquire blocks until the unit's lock is held or the wait budget is spent.
func (l *RedisUnitLocker) Acquire(ctx context.Context, tenantID, unitID uuid.UUID) (ReleaseFunc, error) {
	key := UnitKey(tenantID, unitID)
	token := uuid.NewString()

	err := acquire(ctx, key, l.opts, func(ctx context.Context) (bool, error) {
		return l.client.SetNX(ctx, key, token, l.opts.TTL).Result()
	})
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
