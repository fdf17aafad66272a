// Package seed holds the fixed sample catalog and loads it into a store.
package seed

import (
	"context"
	"errors"
	"fmt"

	apperrors "edutech/internal/errors"
	"edutech/internal/model"
	"edutech/internal/repository"
)

// Result counts what Load did.
type Result struct {
	Created int
	Skipped int
}

// Load inserts the sample catalog. Records whose slug (courses, blog posts)
// or title (research and student projects) already exist are skipped, so
// running it against a populated SQL store is safe.
func Load(ctx context.Context, repos *repository.Repositories) (Result, error) {
	var res Result

	for _, course := range Courses() {
		if err := count(&res, repos.Courses.Create(ctx, &course)); err != nil {
			return res, fmt.Errorf("seed course %s: %w", course.Slug, err)
		}
	}

	for _, post := range BlogPosts() {
		if err := count(&res, repos.BlogPosts.Create(ctx, &post)); err != nil {
			return res, fmt.Errorf("seed blog post %s: %w", post.Slug, err)
		}
	}

	existingResearch, err := repos.Research.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list research projects: %w", err)
	}
	researchTitles := titles(existingResearch, func(p model.ResearchProject) string { return p.Title })
	for _, project := range ResearchProjects() {
		if researchTitles[project.Title] {
			res.Skipped++
			continue
		}
		if err := count(&res, repos.Research.Create(ctx, &project)); err != nil {
			return res, fmt.Errorf("seed research project %q: %w", project.Title, err)
		}
	}

	existingProjects, err := repos.Projects.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list student projects: %w", err)
	}
	projectTitles := titles(existingProjects, func(p model.StudentProject) string { return p.Title })
	for _, project := range StudentProjects() {
		if projectTitles[project.Title] {
			res.Skipped++
			continue
		}
		if err := count(&res, repos.Projects.Create(ctx, &project)); err != nil {
			return res, fmt.Errorf("seed student project %q: %w", project.Title, err)
		}
	}

	return res, nil
}

// count records the outcome of one create; duplicates are skips, not failures.
func count(res *Result, err error) error {
	switch {
	case err == nil:
		res.Created++
		return nil
	case errors.Is(err, apperrors.ErrDuplicate):
		res.Skipped++
		return nil
	default:
		return err
	}
}

func titles[T any](records []T, title func(T) string) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[title(r)] = true
	}
	return set
}
