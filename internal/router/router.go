package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoeventos/eventos-api/internal/config"
	"github.com/ecoeventos/eventos-api/internal/handler"
	"github.com/ecoeventos/eventos-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	FaqHandler     *handler.FaqHandler
	EventHandler   *handler.EventHandler
	CommentHandler *handler.CommentHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	if deps.FaqHandler != nil {
		deps.FaqHandler.Register(api.Group("/faqs"))
	}

	if deps.EventHandler != nil {
		deps.EventHandler.Register(api.Group("/events"))
	}

	if deps.CommentHandler != nil {
		deps.CommentHandler.Register(api.Group("/comments"))
		deps.CommentHandler.RegisterModeration(api.Group("/moderacion"))
	}
}
