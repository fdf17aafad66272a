package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edutech/internal/config"
	apperrors "edutech/internal/errors"
	"edutech/internal/handler"
	"edutech/internal/model"
	"edutech/internal/repository"
	"edutech/internal/router"
	"edutech/internal/seed"
	"edutech/internal/service"
)

type testServer struct {
	e     *echo.Echo
	repos *repository.Repositories
}

// setupServer returns the full router over a freshly seeded memory store.
func setupServer(t *testing.T) *testServer {
	t.Helper()
	repos := repository.NewMemory()
	_, err := seed.Load(context.Background(), repos)
	require.NoError(t, err)

	svcs := service.New(repos, nil, 0)
	e := echo.New()
	router.Register(
		e,
		&config.Config{CORSOrigins: []string{"http://localhost:5173"}},
		handler.NewCourseHandler(svcs.Courses),
		handler.NewBlogHandler(svcs.Blog),
		handler.NewResearchHandler(svcs.Research),
		handler.NewProjectHandler(svcs.Projects),
		handler.NewContactHandler(svcs.Contacts),
	)
	return &testServer{e: e, repos: repos}
}

func (s *testServer) do(method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCourses_ListInCatalogOrder(t *testing.T) {
	s := setupServer(t)

	rec := s.do(http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	courses := decode[[]model.Course](t, rec)
	require.Len(t, courses, 6)
	for i, want := range []string{"python", "javascript", "java", "sql", "cpp", "react"} {
		assert.Equal(t, want, courses[i].Slug)
		assert.NotEmpty(t, courses[i].ID)
	}
	assert.Contains(t, rec.Body.String(), `"lessons":8`)
}

func TestCourses_GetEverySlug(t *testing.T) {
	s := setupServer(t)

	for _, c := range seed.Courses() {
		t.Run(c.Slug, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/api/courses/"+c.Slug, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			got := decode[model.Course](t, rec)
			assert.Equal(t, c.Slug, got.Slug)
			assert.Equal(t, c.Title, got.Title)
			assert.Len(t, got.Modules, 5)
		})
	}
}

func TestNotFound_Messages(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		target  string
		message string
	}{
		{"/api/courses/cobol", "Course not found"},
		{"/api/blog/missing-post", "Blog post not found"},
		{"/api/research/missing", "Research project not found"},
		{"/api/projects/missing", "Student project not found"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := s.do(http.MethodGet, tt.target, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, tt.message, decode[apperrors.MessageResponse](t, rec).Message)
		})
	}
}

func TestContact(t *testing.T) {
	valid := map[string]string{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"subject": "Enrolment",
		"message": "Is the Python course self paced?",
	}
	with := func(key, value string) map[string]string {
		out := make(map[string]string, len(valid))
		for k, v := range valid {
			out[k] = v
		}
		out[key] = value
		return out
	}

	tests := []struct {
		name         string
		body         []byte
		expectedCode int
	}{
		{name: "short message", body: mustJSON(t, with("message", "too short")), expectedCode: http.StatusBadRequest},
		{name: "short name", body: mustJSON(t, with("name", "A")), expectedCode: http.StatusBadRequest},
		{name: "bad email", body: mustJSON(t, with("email", "not-an-email")), expectedCode: http.StatusBadRequest},
		{name: "empty subject", body: mustJSON(t, with("subject", "")), expectedCode: http.StatusBadRequest},
		{name: "malformed json", body: []byte(`{"name":`), expectedCode: http.StatusBadRequest},
		{name: "valid", body: mustJSON(t, valid), expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupServer(t)

			rec := s.do(http.MethodPost, "/api/contact", tt.body)
			require.Equal(t, tt.expectedCode, rec.Code)

			contacts, err := s.repos.Contacts.List(context.Background())
			require.NoError(t, err)

			if tt.expectedCode != http.StatusOK {
				assert.Equal(t, "Invalid contact form data", decode[apperrors.MessageResponse](t, rec).Message)
				assert.Empty(t, contacts)
				return
			}

			resp := decode[handler.ContactResponse](t, rec)
			assert.Equal(t, "Contact form submitted successfully", resp.Message)
			require.NotEmpty(t, resp.ID)
			require.Len(t, contacts, 1)

			stored, err := s.repos.Contacts.FindByID(context.Background(), resp.ID)
			require.NoError(t, err)
			assert.Equal(t, valid["email"], stored.Email)
			assert.NotEmpty(t, stored.CreatedAt)
		})
	}
}

func TestContact_IdenticalSubmissionsGetDistinctIDs(t *testing.T) {
	s := setupServer(t)
	body := mustJSON(t, map[string]string{
		"name": "Bo", "email": "bo@example.com", "subject": "Hi", "message": "Hello from the tests",
	})

	first := decode[handler.ContactResponse](t, s.do(http.MethodPost, "/api/contact", body))
	second := decode[handler.ContactResponse](t, s.do(http.MethodPost, "/api/contact", body))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestBlogResearchProjects(t *testing.T) {
	s := setupServer(t)

	rec := s.do(http.MethodGet, "/api/blog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decode[[]model.BlogPost](t, rec)
	require.Len(t, posts, 3)

	rec = s.do(http.MethodGet, "/api/blog/"+posts[1].Slug, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, posts[1].Title, decode[model.BlogPost](t, rec).Title)

	rec = s.do(http.MethodGet, "/api/research", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	research := decode[[]model.ResearchProject](t, rec)
	require.Len(t, research, 3)

	rec = s.do(http.MethodGet, "/api/research/"+research[0].ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, research[0].Title, decode[model.ResearchProject](t, rec).Title)

	rec = s.do(http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	projects := decode[[]model.StudentProject](t, rec)
	require.Len(t, projects, 3)

	rec = s.do(http.MethodGet, "/api/projects/"+projects[2].ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, projects[2].Title, decode[model.StudentProject](t, rec).Title)
}

// failingCourses fails every call with a storage error.
type failingCourses struct{}

func (failingCourses) ListCourses(context.Context) ([]model.Course, error) {
	return nil, errors.New("database is locked")
}

func (failingCourses) GetCourse(context.Context, string) (*model.Course, error) {
	return nil, errors.New("database is locked")
}

func TestCourses_StorageFailure(t *testing.T) {
	e := echo.New()
	h := handler.NewCourseHandler(failingCourses{})
	e.GET("/api/courses", h.ListCourses)
	e.GET("/api/courses/:slug", h.GetCourse)

	tests := []struct {
		target  string
		message string
	}{
		{"/api/courses", "Failed to fetch courses"},
		{"/api/courses/python", "Failed to fetch course"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, tt.message, decode[apperrors.MessageResponse](t, rec).Message)
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
