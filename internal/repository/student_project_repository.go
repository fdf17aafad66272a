package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"edutech/internal/model"
)

// StudentProjectRepository defines student project persistence operations.
type StudentProjectRepository interface {
	Create(ctx context.Context, project *model.StudentProject) error
	FindByID(ctx context.Context, id string) (*model.StudentProject, error)
	List(ctx context.Context) ([]model.StudentProject, error)
}

type studentProjectRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStudentProjectRepository creates a new student project repository.
func NewStudentProjectRepository(db *gorm.DB, now func() time.Time) StudentProjectRepository {
	return &studentProjectRepository{db: db, now: now}
}

// Create assigns a fresh ID, stamps CompletedAt and inserts the project.
func (r *studentProjectRepository) Create(ctx context.Context, project *model.StudentProject) error {
	project.Seq = 0
	project.ID = model.NewID()
	stamp(&project.CompletedAt, r.now)
	return translate(r.db.WithContext(ctx).Create(project).Error)
}

// FindByID finds a student project by ID.
func (r *studentProjectRepository) FindByID(ctx context.Context, id string) (*model.StudentProject, error) {
	var project model.StudentProject
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

// List returns all student projects in insertion order.
func (r *studentProjectRepository) List(ctx context.Context) ([]model.StudentProject, error) {
	projects := []model.StudentProject{}
	if err := r.db.WithContext(ctx).Order("seq").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
