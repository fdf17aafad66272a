package service

import (
	"context"
	"fmt"
	"time"

	"edutech/internal/cache"
	"edutech/internal/model"
	"edutech/internal/repository"
)

// CourseService serves the course catalog.
type CourseService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	GetCourse(ctx context.Context, slug string) (*model.Course, error)
}

type courseService struct {
	repo repository.CourseRepository
	rc   readCache
}

// NewCourseService creates a course service with a read-through cache.
func NewCourseService(repo repository.CourseRepository, c cache.Cache, ttl time.Duration) CourseService {
	return &courseService{repo: repo, rc: newReadCache(c, ttl)}
}

func (s *courseService) cacheKey(slug string) string {
	return fmt.Sprintf("course:%s", slug)
}

// ListCourses returns every course in catalog order.
func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return cached(ctx, s.rc, "courses", func() ([]model.Course, error) {
		return s.repo.List(ctx)
	})
}

// GetCourse looks a course up by slug.
func (s *courseService) GetCourse(ctx context.Context, slug string) (*model.Course, error) {
	return cached(ctx, s.rc, s.cacheKey(slug), func() (*model.Course, error) {
		return s.repo.FindBySlug(ctx, slug)
	})
}
