package service

import (
	"context"
	"fmt"
	"time"

	"edutech/internal/cache"
	"edutech/internal/model"
	"edutech/internal/repository"
)

// ProjectService serves the student project showcase.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]model.StudentProject, error)
	GetProject(ctx context.Context, id string) (*model.StudentProject, error)
}

type projectService struct {
	repo repository.StudentProjectRepository
	rc   readCache
}

// NewProjectService creates a student project service with a read-through cache.
func NewProjectService(repo repository.StudentProjectRepository, c cache.Cache, ttl time.Duration) ProjectService {
	return &projectService{repo: repo, rc: newReadCache(c, ttl)}
}

func (s *projectService) cacheKey(id string) string {
	return fmt.Sprintf("project:%s", id)
}

func (s *projectService) ListProjects(ctx context.Context) ([]model.StudentProject, error) {
	return cached(ctx, s.rc, "projects", func() ([]model.StudentProject, error) {
		return s.repo.List(ctx)
	})
}

func (s *projectService) GetProject(ctx context.Context, id string) (*model.StudentProject, error) {
	return cached(ctx, s.rc, s.cacheKey(id), func() (*model.StudentProject, error) {
		return s.repo.FindByID(ctx, id)
	})
}
