package lock

import (
	"context"
	"fmt"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// UnitLocker is implemented by both lock backends.
type UnitLocker interface {
	Acquire(ctx context.Context, tenantID, unitID uuid.UUID) (ReleaseFunc, error)
}

// NewUnitLocker builds the locker selected by lock.backend. The Redis client
// is returned so the caller can close it on shutdown; it is nil for memory.
func NewUnitLocker(cfg config.LockConfig, redisCfg config.RedisConfig, logger *zap.Logger) (UnitLocker, *redis.Client, error) {
	opts := Options{
		TTL:           cfg.TTL,
		WaitTimeout:   cfg.WaitTimeout,
		RetryInterval: cfg.RetryInterval,
	}

	switch cfg.Backend {
	case "redis":
		client, err := NewRedisClient(redisCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("redis unit lock backend: %w", err)
		}
		logger.Info("using Redis unit locks", zap.String("addr", redisCfg.Addr()))
		return NewRedisUnitLocker(client, opts), client, nil
	case "memory", "":
		logger.Warn("using in-memory unit locks; concurrent instances will not be serialized")
		return NewInMemoryUnitLocker(opts), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown lock backend %q", cfg.Backend)
	}
}

var (
	_ UnitLocker = (*RedisUnitLocker)(nil)
	_ UnitLocker = (*InMemoryUnitLocker)(nil)
)
