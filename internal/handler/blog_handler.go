package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "edutech/internal/errors"
	"edutech/internal/service"
)

// BlogHandler handles blog endpoints.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// ListPosts godoc
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Success 200 {array} model.BlogPost
// @Failure 500 {object} errors.MessageResponse
// @Router /blog [get]
func (h *BlogHandler) ListPosts(c echo.Context) error {
	posts, err := h.blogService.ListPosts(c.Request().Context())
	if err != nil {
		return httpError(err, apperrors.Messages{Failed: "Failed to fetch blog posts"})
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get blog post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /blog/{slug} [get]
func (h *BlogHandler) GetPost(c echo.Context) error {
	post, err := h.blogService.GetPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return httpError(err, apperrors.Messages{
			NotFound: "Blog post not found",
			Failed:   "Failed to fetch blog post",
		})
	}
	return c.JSON(http.StatusOK, post)
}
