package cache

import (
	"context"
	"time"

	"edutech/internal/config"
)

// Cache is a byte-oriented key/value cache. Implementations fail safe:
// backend errors behave like a miss on Get and are swallowed on Set/Delete.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// New builds the cache selected by cfg.CacheDriver. Unknown drivers disable caching.
func New(cfg *config.Config) Cache {
	switch cfg.CacheDriver {
	case config.CacheRedis:
		return NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	case config.CacheLocal:
		return NewLocal(cfg.CacheTTL)
	default:
		return Noop{}
	}
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) Delete(context.Context, string) error { return nil }
