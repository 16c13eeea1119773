package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smarthealth/connect/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, chat *handlers.ChatHandler, health *handlers.HealthHandler) {
	// Chat endpoint lives at the root, matching the client page.
	app.Post("/chat", chat.Chat)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)
}
