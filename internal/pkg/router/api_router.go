package router

import (
	"github.com/planforge/planforge/app/controllers"
	"github.com/planforge/planforge/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes, authenticated via user API key
	v1 := api.Group("/v1", middleware.APIKeyAuthMiddleware())
	v1.Get("/subscription/status", controllers.HandleSubscriptionStatus)
	v1.Get("/webhooks/stats", middleware.RequireAPIAdmin, controllers.HandleWebhookStats)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
