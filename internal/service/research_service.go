package service

import (
	"context"
	"fmt"
	"time"

	"edutech/internal/cache"
	"edutech/internal/model"
	"edutech/internal/repository"
)

// ResearchService serves research projects.
type ResearchService interface {
	ListResearch(ctx context.Context) ([]model.ResearchProject, error)
	GetResearch(ctx context.Context, id string) (*model.ResearchProject, error)
}

type researchService struct {
	repo repository.ResearchProjectRepository
	rc   readCache
}

// NewResearchService creates a research service with a read-through cache.
func NewResearchService(repo repository.ResearchProjectRepository, c cache.Cache, ttl time.Duration) ResearchService {
	return &researchService{repo: repo, rc: newReadCache(c, ttl)}
}

func (s *researchService) cacheKey(id string) string {
	return fmt.Sprintf("research:%s", id)
}

func (s *researchService) ListResearch(ctx context.Context) ([]model.ResearchProject, error) {
	return cached(ctx, s.rc, "research", func() ([]model.ResearchProject, error) {
		return s.repo.List(ctx)
	})
}

func (s *researchService) GetResearch(ctx context.Context, id string) (*model.ResearchProject, error) {
	return cached(ctx, s.rc, s.cacheKey(id), func() (*model.ResearchProject, error) {
		return s.repo.FindByID(ctx, id)
	})
}
