package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "edutech/internal/errors"
	"edutech/internal/service"
)

// CourseHandler handles course endpoints.
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListCourses godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {array} model.Course
// @Failure 500 {object} errors.MessageResponse
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.courseService.ListCourses(c.Request().Context())
	if err != nil {
		return httpError(err, apperrors.Messages{Failed: "Failed to fetch courses"})
	}
	return c.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary Get course by slug
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} model.Course
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /courses/{slug} [get]
func (h *CourseHandler) GetCourse(c echo.Context) error {
	course, err := h.courseService.GetCourse(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return httpError(err, apperrors.Messages{
			NotFound: "Course not found",
			Failed:   "Failed to fetch course",
		})
	}
	return c.JSON(http.StatusOK, course)
}
