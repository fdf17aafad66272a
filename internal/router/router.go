package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	echoSwagger "github.com/swaggo/echo-swagger"

	"edutech/internal/config"
	"edutech/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	courseHandler *handler.CourseHandler,
	blogHandler *handler.BlogHandler,
	researchHandler *handler.ResearchHandler,
	projectHandler *handler.ProjectHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(echo.WrapMiddleware(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
	}).Handler))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/courses", courseHandler.ListCourses)
	api.GET("/courses/:slug", courseHandler.GetCourse)

	api.POST("/contact", contactHandler.SubmitContact)

	api.GET("/blog", blogHandler.ListPosts)
	api.GET("/blog/:slug", blogHandler.GetPost)

	api.GET("/research", researchHandler.ListResearch)
	api.GET("/research/:id", researchHandler.GetResearch)

	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/projects/:id", projectHandler.GetProject)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
