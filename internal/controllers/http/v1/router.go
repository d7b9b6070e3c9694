package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"precip-viewer/docs"
	"precip-viewer/internal/repositories"
	"precip-viewer/pkg/observe"
)

type routes struct {
	repo     repositories.ForecastRepository
	location string
	l        *observe.Logger
}

// NewRouter mounts the forecast provider endpoints the viewer consumes.
func NewRouter(
	app *fiber.App,
	repo repositories.ForecastRepository,
	location string,
	l *observe.Logger,
) {
	r := &routes{
		repo:     repo,
		location: location,
		l:        l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(docs.SwaggerJSON)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	api := app.Group("/api/weather")
	api.Get("/today/", r.handleToday)
	api.Get("/week/", r.handleWeek)
	api.Get("/health/", r.handleHealth)
}
