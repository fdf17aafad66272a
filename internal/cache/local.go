package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Local is an in-process cache for single-instance deployments.
type Local struct {
	store *gocache.Cache
}

// NewLocal creates a Local cache whose entries default to ttl and are
// swept every two TTLs.
func NewLocal(ttl time.Duration) *Local {
	return &Local{store: gocache.New(ttl, 2*ttl)}
}

// Get returns a copy of the stored value or nil on a miss.
func (c *Local) Get(_ context.Context, key string) ([]byte, error) {
	v, found := c.store.Get(key)
	if !found {
		return nil, nil
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// Set stores value for ttl; a zero ttl uses the cache default.
func (c *Local) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

// Delete removes a key.
func (c *Local) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}
