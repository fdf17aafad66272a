package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "edutech/internal/errors"
	"edutech/internal/model"
)

// Repositories bundles the six entity collections behind one value so the
// store can be built once at startup and handed to the service layer.
type Repositories struct {
	Users     UserRepository
	Courses   CourseRepository
	Contacts  ContactRepository
	BlogPosts BlogPostRepository
	Research  ResearchProjectRepository
	Projects  StudentProjectRepository
}

// Option configures a store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the wall clock used to stamp server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewGorm creates GORM-backed repositories sharing one connection.
func NewGorm(db *gorm.DB, opts ...Option) *Repositories {
	o := buildOptions(opts)
	return &Repositories{
		Users:     NewUserRepository(db),
		Courses:   NewCourseRepository(db),
		Contacts:  NewContactRepository(db, o.now),
		BlogPosts: NewBlogPostRepository(db, o.now),
		Research:  NewResearchProjectRepository(db, o.now),
		Projects:  NewStudentProjectRepository(db, o.now),
	}
}

// translate maps GORM errors onto the domain sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrDuplicate
	default:
		return err
	}
}

// stamp fills an empty server-assigned timestamp. Seed records keep their fixed dates.
func stamp(field *string, now func() time.Time) {
	if *field == "" {
		*field = model.Timestamp(now())
	}
}
