package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edutech/internal/db"
	apperrors "edutech/internal/errors"
	"edutech/internal/model"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type backend struct {
	name string
	open func(t *testing.T) *Repositories
}

func backends() []backend {
	return []backend{
		{
			name: "memory",
			open: func(t *testing.T) *Repositories {
				return NewMemory(WithClock(fixedClock))
			},
		},
		{
			name: "gorm-sqlite",
			open: func(t *testing.T) *Repositories {
				dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
				gormDB, err := db.NewSQLite(dsn)
				require.NoError(t, err)
				require.NoError(t, db.Migrate(gormDB, false))
				return NewGorm(gormDB, WithClock(fixedClock))
			},
		},
	}
}

func course(slug string) *model.Course {
	return &model.Course{
		Title:    "Course " + slug,
		Slug:     slug,
		Level:    model.LevelBeginner,
		Duration: "10 hours",
		Price:    "Free",
		Image:    "https://example.com/" + slug + ".png",
		Modules: []model.CourseModule{
			{Title: "Intro", Description: "Getting started", LessonCount: 3, Duration: "1 hour"},
		},
	}
}

func TestCourses(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repos := b.open(t)

			slugs := []string{"python", "javascript", "java"}
			ids := make([]string, 0, len(slugs))
			for _, slug := range slugs {
				c := course(slug)
				require.NoError(t, repos.Courses.Create(ctx, c))
				require.NotEmpty(t, c.ID)
				assert.Equal(t, model.DefaultCourseRating, c.Rating)
				ids = append(ids, c.ID)
			}

			list, err := repos.Courses.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, len(slugs))
			for i, c := range list {
				assert.Equal(t, slugs[i], c.Slug)
				assert.Equal(t, ids[i], c.ID)
			}

			bySlug, err := repos.Courses.FindBySlug(ctx, "java")
			require.NoError(t, err)
			assert.Equal(t, ids[2], bySlug.ID)
			assert.Equal(t, course("java").Modules, bySlug.Modules)

			byID, err := repos.Courses.FindByID(ctx, ids[0])
			require.NoError(t, err)
			assert.Equal(t, "python", byID.Slug)

			_, err = repos.Courses.FindBySlug(ctx, "cobol")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)

			_, err = repos.Courses.FindByID(ctx, model.NewID())
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
		})
	}
}

func TestCourses_DuplicateSlugRejected(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repos := b.open(t)

			require.NoError(t, repos.Courses.Create(ctx, course("sql")))
			err := repos.Courses.Create(ctx, course("sql"))
			assert.ErrorIs(t, err, apperrors.ErrDuplicate)

			list, err := repos.Courses.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})
	}
}

func TestContacts(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repos := b.open(t)

			first := &model.Contact{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Message: "Hello there, school!"}
			second := &model.Contact{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Message: "Hello there, school!"}
			require.NoError(t, repos.Contacts.Create(ctx, first))
			require.NoError(t, repos.Contacts.Create(ctx, second))

			assert.NotEqual(t, first.ID, second.ID)
			assert.Equal(t, "2025-03-01T12:00:00.000Z", first.CreatedAt)

			stored, err := repos.Contacts.FindByID(ctx, second.ID)
			require.NoError(t, err)
			assert.Equal(t, second.Message, stored.Message)
			assert.NotEmpty(t, stored.CreatedAt)

			list, err := repos.Contacts.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 2)
		})
	}
}

func TestBlogPosts(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repos := b.open(t)

			seeded := &model.BlogPost{
				Title:       "Seeded",
				Slug:        "seeded",
				Tags:        []string{"Go", "Testing"},
				Featured:    1,
				PublishedAt: "2024-01-15",
			}
			fresh := &model.BlogPost{Title: "Fresh", Slug: "fresh", Tags: []string{}}
			require.NoError(t, repos.BlogPosts.Create(ctx, seeded))
			require.NoError(t, repos.BlogPosts.Create(ctx, fresh))

			assert.Equal(t, "2024-01-15", seeded.PublishedAt)
			assert.Equal(t, "2025-03-01T12:00:00.000Z", fresh.PublishedAt)

			got, err := repos.BlogPosts.FindBySlug(ctx, "seeded")
			require.NoError(t, err)
			assert.Equal(t, []string{"Go", "Testing"}, got.Tags)
			assert.Equal(t, 1, got.Featured)

			got, err = repos.BlogPosts.FindByID(ctx, fresh.ID)
			require.NoError(t, err)
			assert.Equal(t, "fresh", got.Slug)

			err = repos.BlogPosts.Create(ctx, &model.BlogPost{Title: "Again", Slug: "fresh"})
			assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		})
	}
}

func TestResearchAndStudentProjects(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repos := b.open(t)

			research := &model.ResearchProject{Title: "R", Status: model.ResearchStatusRecruiting, Partners: []string{"MIT"}}
			require.NoError(t, repos.Research.Create(ctx, research))

			gotResearch, err := repos.Research.FindByID(ctx, research.ID)
			require.NoError(t, err)
			assert.Equal(t, []string{"MIT"}, gotResearch.Partners)
			assert.Equal(t, "2025-03-01T12:00:00.000Z", gotResearch.CreatedAt)

			github := "https://github.com/example/app"
			withLinks := &model.StudentProject{Title: "With links", Technologies: []string{"Go"}, GithubURL: &github, Stars: 3}
			noLinks := &model.StudentProject{Title: "No links", Technologies: []string{"Rust"}}
			require.NoError(t, repos.Projects.Create(ctx, withLinks))
			require.NoError(t, repos.Projects.Create(ctx, noLinks))

			got, err := repos.Projects.FindByID(ctx, withLinks.ID)
			require.NoError(t, err)
			require.NotNil(t, got.GithubURL)
			assert.Equal(t, github, *got.GithubURL)
			assert.Nil(t, got.LiveURL)
			assert.Equal(t, 3, got.Stars)

			list, err := repos.Projects.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "With links", list[0].Title)
			assert.Equal(t, "No links", list[1].Title)

			_, err = repos.Projects.FindByID(ctx, "missing")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
			_, err = repos.Research.FindByID(ctx, "missing")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
		})
	}
}

func TestUsers(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repos := b.open(t)

			user := &model.User{Username: "staff", PasswordHash: "hash"}
			require.NoError(t, repos.Users.Create(ctx, user))

			got, err := repos.Users.FindByUsername(ctx, "staff")
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)

			got, err = repos.Users.FindByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, "staff", got.Username)

			err = repos.Users.Create(ctx, &model.User{Username: "staff", PasswordHash: "other"})
			assert.ErrorIs(t, err, apperrors.ErrDuplicate)

			_, err = repos.Users.FindByUsername(ctx, "nobody")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
		})
	}
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repos := NewMemory()

	c := course("react")
	require.NoError(t, repos.Courses.Create(ctx, c))

	// mutating the caller's record after insert must not reach the store
	c.Modules[0].Title = "changed"

	list, err := repos.Courses.List(ctx)
	require.NoError(t, err)
	list[0].Title = "changed"

	got, err := repos.Courses.FindBySlug(ctx, "react")
	require.NoError(t, err)
	assert.Equal(t, "Course react", got.Title)
	assert.Equal(t, "Intro", got.Modules[0].Title)
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repos := NewMemory()

	_, err := repos.Courses.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = repos.Contacts.Create(ctx, &model.Contact{Name: "Ann"})
	assert.ErrorIs(t, err, context.Canceled)

	list, err := repos.Contacts.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
