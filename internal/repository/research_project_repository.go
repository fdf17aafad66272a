package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"edutech/internal/model"
)

// ResearchProjectRepository defines research project persistence operations.
type ResearchProjectRepository interface {
	Create(ctx context.Context, project *model.ResearchProject) error
	FindByID(ctx context.Context, id string) (*model.ResearchProject, error)
	List(ctx context.Context) ([]model.ResearchProject, error)
}

type researchProjectRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewResearchProjectRepository creates a new research project repository.
func NewResearchProjectRepository(db *gorm.DB, now func() time.Time) ResearchProjectRepository {
	return &researchProjectRepository{db: db, now: now}
}

// Create assigns a fresh ID, stamps CreatedAt and inserts the project.
func (r *researchProjectRepository) Create(ctx context.Context, project *model.ResearchProject) error {
	project.Seq = 0
	project.ID = model.NewID()
	stamp(&project.CreatedAt, r.now)
	return translate(r.db.WithContext(ctx).Create(project).Error)
}

// FindByID finds a research project by ID.
func (r *researchProjectRepository) FindByID(ctx context.Context, id string) (*model.ResearchProject, error) {
	var project model.ResearchProject
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

// List returns all research projects in insertion order.
func (r *researchProjectRepository) List(ctx context.Context) ([]model.ResearchProject, error) {
	projects := []model.ResearchProject{}
	if err := r.db.WithContext(ctx).Order("seq").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
