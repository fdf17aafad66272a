package service

import (
	"context"
	"encoding/json"
	"time"

	"edutech/internal/cache"
	"edutech/internal/repository"
)

// DefaultCacheTTL is used when a service is built with a non-positive TTL.
const DefaultCacheTTL = 5 * time.Minute

// Services bundles every service built over one store and cache.
type Services struct {
	Courses  CourseService
	Blog     BlogService
	Research ResearchService
	Projects ProjectService
	Contacts ContactService
	Users    UserService
}

// New wires all services to repos. A nil cache disables caching.
func New(repos *repository.Repositories, c cache.Cache, ttl time.Duration) *Services {
	return &Services{
		Courses:  NewCourseService(repos.Courses, c, ttl),
		Blog:     NewBlogService(repos.BlogPosts, c, ttl),
		Research: NewResearchService(repos.Research, c, ttl),
		Projects: NewProjectService(repos.Projects, c, ttl),
		Contacts: NewContactService(repos.Contacts),
		Users:    NewUserService(repos.Users),
	}
}

// readCache carries the cache handle and TTL shared by the read services.
type readCache struct {
	cache cache.Cache
	ttl   time.Duration
}

func newReadCache(c cache.Cache, ttl time.Duration) readCache {
	if c == nil {
		c = cache.Noop{}
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return readCache{cache: c, ttl: ttl}
}

// cached returns the value under key, loading and storing it on a miss.
// Cache failures and undecodable entries fall through to load; load errors
// are never cached.
func cached[T any](ctx context.Context, rc readCache, key string, load func() (T, error)) (T, error) {
	if data, _ := rc.cache.Get(ctx, key); data != nil {
		var hit T
		if err := json.Unmarshal(data, &hit); err == nil {
			return hit, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if payload, err := json.Marshal(v); err == nil {
		_ = rc.cache.Set(ctx, key, payload, rc.ttl)
	}
	return v, nil
}
