package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "edutech/internal/errors"
	"edutech/internal/service"
)

// ProjectHandler handles student project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new student project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects godoc
// @Summary List student projects
// @Tags projects
// @Produce json
// @Success 200 {array} model.StudentProject
// @Failure 500 {object} errors.MessageResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		return httpError(err, apperrors.Messages{Failed: "Failed to fetch student projects"})
	}
	return c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get student project by id
// @Tags projects
// @Produce json
// @Param id path string true "Student project ID"
// @Success 200 {object} model.StudentProject
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	project, err := h.projectService.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, apperrors.Messages{
			NotFound: "Student project not found",
			Failed:   "Failed to fetch student project",
		})
	}
	return c.JSON(http.StatusOK, project)
}
