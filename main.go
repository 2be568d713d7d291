package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/planforge/planforge/app/repository"
	"github.com/planforge/planforge/internal/pkg/cache"
	"github.com/planforge/planforge/internal/pkg/database"
	"github.com/planforge/planforge/internal/pkg/env"
	"github.com/planforge/planforge/internal/pkg/logging"
	"github.com/planforge/planforge/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal().Err(err).Msg("server stopped")
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	logging.Setup()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	if env.GetEnv("BILLING_WEBHOOK_SECRET", "") == "" {
		log.Warn().Msg("BILLING_WEBHOOK_SECRET is not set; webhook signatures will not be verified")
	}

	app := fiber.New(fiber.Config{
		AppName:   "planforge-billing",
		BodyLimit: 1 << 20, // webhook payloads are small JSON bodies
	})
	app.Use(recover.New(), fiberlogger.New())
	app.Get("/metrics", monitor.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}
