package repository

import (
	"context"
	"time"

	"edutech/internal/model"
)

// NewMemory creates empty in-process repositories. Nothing is persisted.
func NewMemory(opts ...Option) *Repositories {
	o := buildOptions(opts)
	return &Repositories{
		Users:     newMemoryUsers(),
		Courses:   newMemoryCourses(),
		Contacts:  newMemoryContacts(o.now),
		BlogPosts: newMemoryBlogPosts(o.now),
		Research:  newMemoryResearch(o.now),
		Projects:  newMemoryProjects(o.now),
	}
}

type memoryUsers struct {
	c *collection[model.User]
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{c: newCollection(
		func(u *model.User) string { return u.ID },
		func(u *model.User) string { return u.Username },
		func(u *model.User) *model.User { cp := *u; return &cp },
	)}
}

func (r *memoryUsers) Create(ctx context.Context, user *model.User) error {
	return r.c.insert(ctx, user, func(u *model.User, seq uint) {
		u.Seq = seq
		u.ID = model.NewID()
	})
}

func (r *memoryUsers) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.c.get(ctx, id)
}

func (r *memoryUsers) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.c.getByKey(ctx, username)
}

type memoryCourses struct {
	c *collection[model.Course]
}

func newMemoryCourses() *memoryCourses {
	return &memoryCourses{c: newCollection(
		func(c *model.Course) string { return c.ID },
		func(c *model.Course) string { return c.Slug },
		func(c *model.Course) *model.Course {
			cp := *c
			if c.Modules != nil {
				cp.Modules = append([]model.CourseModule(nil), c.Modules...)
			}
			return &cp
		},
	)}
}

func (r *memoryCourses) Create(ctx context.Context, course *model.Course) error {
	return r.c.insert(ctx, course, func(c *model.Course, seq uint) {
		c.Seq = seq
		c.ID = model.NewID()
		c.ApplyDefaults()
	})
}

func (r *memoryCourses) FindByID(ctx context.Context, id string) (*model.Course, error) {
	return r.c.get(ctx, id)
}

func (r *memoryCourses) FindBySlug(ctx context.Context, slug string) (*model.Course, error) {
	return r.c.getByKey(ctx, slug)
}

func (r *memoryCourses) List(ctx context.Context) ([]model.Course, error) {
	return r.c.list(ctx)
}

type memoryContacts struct {
	c   *collection[model.Contact]
	now func() time.Time
}

func newMemoryContacts(now func() time.Time) *memoryContacts {
	return &memoryContacts{now: now, c: newCollection(
		func(c *model.Contact) string { return c.ID },
		nil,
		func(c *model.Contact) *model.Contact { cp := *c; return &cp },
	)}
}

func (r *memoryContacts) Create(ctx context.Context, contact *model.Contact) error {
	return r.c.insert(ctx, contact, func(c *model.Contact, seq uint) {
		c.Seq = seq
		c.ID = model.NewID()
		stamp(&c.CreatedAt, r.now)
	})
}

func (r *memoryContacts) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	return r.c.get(ctx, id)
}

func (r *memoryContacts) List(ctx context.Context) ([]model.Contact, error) {
	return r.c.list(ctx)
}

type memoryBlogPosts struct {
	c   *collection[model.BlogPost]
	now func() time.Time
}

func newMemoryBlogPosts(now func() time.Time) *memoryBlogPosts {
	return &memoryBlogPosts{now: now, c: newCollection(
		func(p *model.BlogPost) string { return p.ID },
		func(p *model.BlogPost) string { return p.Slug },
		func(p *model.BlogPost) *model.BlogPost {
			cp := *p
			cp.Tags = cloneStrings(p.Tags)
			return &cp
		},
	)}
}

func (r *memoryBlogPosts) Create(ctx context.Context, post *model.BlogPost) error {
	return r.c.insert(ctx, post, func(p *model.BlogPost, seq uint) {
		p.Seq = seq
		p.ID = model.NewID()
		stamp(&p.PublishedAt, r.now)
	})
}

func (r *memoryBlogPosts) FindByID(ctx context.Context, id string) (*model.BlogPost, error) {
	return r.c.get(ctx, id)
}

func (r *memoryBlogPosts) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return r.c.getByKey(ctx, slug)
}

func (r *memoryBlogPosts) List(ctx context.Context) ([]model.BlogPost, error) {
	return r.c.list(ctx)
}

type memoryResearch struct {
	c   *collection[model.ResearchProject]
	now func() time.Time
}

func newMemoryResearch(now func() time.Time) *memoryResearch {
	return &memoryResearch{now: now, c: newCollection(
		func(p *model.ResearchProject) string { return p.ID },
		nil,
		func(p *model.ResearchProject) *model.ResearchProject {
			cp := *p
			cp.Partners = cloneStrings(p.Partners)
			return &cp
		},
	)}
}

func (r *memoryResearch) Create(ctx context.Context, project *model.ResearchProject) error {
	return r.c.insert(ctx, project, func(p *model.ResearchProject, seq uint) {
		p.Seq = seq
		p.ID = model.NewID()
		stamp(&p.CreatedAt, r.now)
	})
}

func (r *memoryResearch) FindByID(ctx context.Context, id string) (*model.ResearchProject, error) {
	return r.c.get(ctx, id)
}

func (r *memoryResearch) List(ctx context.Context) ([]model.ResearchProject, error) {
	return r.c.list(ctx)
}

type memoryProjects struct {
	c   *collection[model.StudentProject]
	now func() time.Time
}

func newMemoryProjects(now func() time.Time) *memoryProjects {
	return &memoryProjects{now: now, c: newCollection(
		func(p *model.StudentProject) string { return p.ID },
		nil,
		func(p *model.StudentProject) *model.StudentProject {
			cp := *p
			cp.Technologies = cloneStrings(p.Technologies)
			cp.GithubURL = cloneStringPtr(p.GithubURL)
			cp.LiveURL = cloneStringPtr(p.LiveURL)
			return &cp
		},
	)}
}

func (r *memoryProjects) Create(ctx context.Context, project *model.StudentProject) error {
	return r.c.insert(ctx, project, func(p *model.StudentProject, seq uint) {
		p.Seq = seq
		p.ID = model.NewID()
		stamp(&p.CompletedAt, r.now)
	})
}

func (r *memoryProjects) FindByID(ctx context.Context, id string) (*model.StudentProject, error) {
	return r.c.get(ctx, id)
}

func (r *memoryProjects) List(ctx context.Context) ([]model.StudentProject, error) {
	return r.c.list(ctx)
}
