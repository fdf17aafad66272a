package service

import (
	"context"
	"fmt"
	"time"

	"edutech/internal/cache"
	"edutech/internal/model"
	"edutech/internal/repository"
)

// BlogService serves blog posts.
type BlogService interface {
	ListPosts(ctx context.Context) ([]model.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*model.BlogPost, error)
}

type blogService struct {
	repo repository.BlogPostRepository
	rc   readCache
}

// NewBlogService creates a blog service with a read-through cache.
func NewBlogService(repo repository.BlogPostRepository, c cache.Cache, ttl time.Duration) BlogService {
	return &blogService{repo: repo, rc: newReadCache(c, ttl)}
}

func (s *blogService) cacheKey(slug string) string {
	return fmt.Sprintf("blog:%s", slug)
}

func (s *blogService) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	return cached(ctx, s.rc, "blog", func() ([]model.BlogPost, error) {
		return s.repo.List(ctx)
	})
}

func (s *blogService) GetPost(ctx context.Context, slug string) (*model.BlogPost, error) {
	return cached(ctx, s.rc, s.cacheKey(slug), func() (*model.BlogPost, error) {
		return s.repo.FindBySlug(ctx, slug)
	})
}
