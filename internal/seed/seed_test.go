package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edutech/internal/repository"
)

func TestCourses_Catalog(t *testing.T) {
	courses := Courses()
	require.Len(t, courses, 6)

	want := []string{"python", "javascript", "java", "sql", "cpp", "react"}
	seen := make(map[string]bool)
	for i, c := range courses {
		assert.Equal(t, want[i], c.Slug)
		assert.False(t, seen[c.Slug], "duplicate slug %s", c.Slug)
		seen[c.Slug] = true
		assert.Len(t, c.Modules, 5, c.Slug)
		assert.Contains(t, c.Image, "w=800&h=400")
	}
}

func TestContent_Sizes(t *testing.T) {
	assert.Len(t, BlogPosts(), 3)
	assert.Len(t, ResearchProjects(), 3)
	assert.Len(t, StudentProjects(), 3)
}

func TestLoad_Idempotent(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()

	first, err := Load(ctx, repos)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 15, Skipped: 0}, first)

	second, err := Load(ctx, repos)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 0, Skipped: 15}, second)

	courses, err := repos.Courses.List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 6)

	posts, err := repos.BlogPosts.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, BlogPosts()[0].PublishedAt, posts[0].PublishedAt)

	projects, err := repos.Projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 3)
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, repository.NewMemory())
	assert.ErrorIs(t, err, context.Canceled)
}
