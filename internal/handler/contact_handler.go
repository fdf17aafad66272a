package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "edutech/internal/errors"
	"edutech/internal/service"
)

const invalidContactMessage = "Invalid contact form data"

// ContactHandler handles the contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=1"`
	Message string `json:"message" validate:"required,min=10"`
}

// ContactResponse acknowledges a stored submission.
type ContactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /contact [post]
func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: invalidContactMessage})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: invalidContactMessage})
	}

	contact, err := h.contactService.Submit(c.Request().Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		return httpError(err, apperrors.Messages{
			Invalid: invalidContactMessage,
			Failed:  "Failed to submit contact form",
		})
	}

	return c.JSON(http.StatusOK, ContactResponse{
		Message: "Contact form submitted successfully",
		ID:      contact.ID,
	})
}
