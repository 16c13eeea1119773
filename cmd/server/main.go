// @title         Smart Health Connect API
// @version       1.0
// @description   Health triage chat relay: forwards user messages to a hosted LLM, resolving at most one round of hospital-locator tool calls per request.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/smarthealth/connect/docs"

	// internal imports
	"github.com/smarthealth/connect/api/http"
	"github.com/smarthealth/connect/api/http/handlers"
	"github.com/smarthealth/connect/pkg/config"
	"github.com/smarthealth/connect/pkg/health"
	"github.com/smarthealth/connect/pkg/health/checkers"
	"github.com/smarthealth/connect/pkg/hospital"
	"github.com/smarthealth/connect/pkg/llm/openrouter"
	"github.com/smarthealth/connect/pkg/triage"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	// Wire dependencies. A missing credential starts the service in a
	// degraded mode where /chat always answers 503.
	var chatSvc triage.Service
	if cfg.OpenRouterAPIKey == "" {
		log.Printf("OPENROUTER_API_KEY is not set: starting degraded, /chat will return 503")
	} else {
		llmClient := openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		)
		chatSvc = triage.NewService(llmClient, hospital.Location{
			Lat: cfg.DefaultLat,
			Lon: cfg.DefaultLon,
		})
	}
	chatHandler := handlers.NewChatHandler(chatSvc)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewCompletionChecker(cfg.OpenRouterAPIKey != ""))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	http.Register(app, chatHandler, healthHandler)

	// Static chat page
	app.Static("/", cfg.StaticDir)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
