package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "edutech/internal/errors"
	"edutech/internal/service"
)

// ResearchHandler handles research project endpoints.
type ResearchHandler struct {
	researchService service.ResearchService
}

// NewResearchHandler creates a new research handler.
func NewResearchHandler(researchService service.ResearchService) *ResearchHandler {
	return &ResearchHandler{researchService: researchService}
}

// ListResearch godoc
// @Summary List research projects
// @Tags research
// @Produce json
// @Success 200 {array} model.ResearchProject
// @Failure 500 {object} errors.MessageResponse
// @Router /research [get]
func (h *ResearchHandler) ListResearch(c echo.Context) error {
	projects, err := h.researchService.ListResearch(c.Request().Context())
	if err != nil {
		return httpError(err, apperrors.Messages{Failed: "Failed to fetch research projects"})
	}
	return c.JSON(http.StatusOK, projects)
}

// GetResearch godoc
// @Summary Get research project by id
// @Tags research
// @Produce json
// @Param id path string true "Research project ID"
// @Success 200 {object} model.ResearchProject
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /research/{id} [get]
func (h *ResearchHandler) GetResearch(c echo.Context) error {
	project, err := h.researchService.GetResearch(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, apperrors.Messages{
			NotFound: "Research project not found",
			Failed:   "Failed to fetch research project",
		})
	}
	return c.JSON(http.StatusOK, project)
}
