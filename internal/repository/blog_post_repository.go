package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "edutech/internal/errors"
	"edutech/internal/model"
)

// BlogPostRepository defines blog post persistence operations.
type BlogPostRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	FindByID(ctx context.Context, id string) (*model.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	List(ctx context.Context) ([]model.BlogPost, error)
}

type blogPostRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBlogPostRepository creates a new blog post repository.
func NewBlogPostRepository(db *gorm.DB, now func() time.Time) BlogPostRepository {
	return &blogPostRepository{db: db, now: now}
}

// Create assigns a fresh ID, stamps PublishedAt and inserts the post.
func (r *blogPostRepository) Create(ctx context.Context, post *model.BlogPost) error {
	if _, err := r.FindBySlug(ctx, post.Slug); err == nil {
		return apperrors.ErrDuplicate
	}
	post.Seq = 0
	post.ID = model.NewID()
	stamp(&post.PublishedAt, r.now)
	return translate(r.db.WithContext(ctx).Create(post).Error)
}

// FindByID finds a blog post by ID.
func (r *blogPostRepository) FindByID(ctx context.Context, id string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// FindBySlug finds a blog post by its public slug.
func (r *blogPostRepository) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// List returns all blog posts in insertion order.
func (r *blogPostRepository) List(ctx context.Context) ([]model.BlogPost, error) {
	posts := []model.BlogPost{}
	if err := r.db.WithContext(ctx).Order("seq").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
