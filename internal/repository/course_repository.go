package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "edutech/internal/errors"
	"edutech/internal/model"
)

// CourseRepository defines course persistence operations.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id string) (*model.Course, error)
	FindBySlug(ctx context.Context, slug string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create assigns a fresh ID, applies defaults and inserts the course.
func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	if _, err := r.FindBySlug(ctx, course.Slug); err == nil {
		return apperrors.ErrDuplicate
	}
	course.Seq = 0
	course.ID = model.NewID()
	course.ApplyDefaults()
	return translate(r.db.WithContext(ctx).Create(course).Error)
}

// FindByID finds a course by ID.
func (r *courseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

// FindBySlug finds a course by its public slug.
func (r *courseRepository) FindBySlug(ctx context.Context, slug string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&course).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

// List returns all courses in insertion order.
func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	courses := []model.Course{}
	if err := r.db.WithContext(ctx).Order("seq").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
