package router

import (
	"github.com/planforge/planforge/app/controllers"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

// InstallRouter registers the unauthenticated HTTP surface: the billing
// webhook ingress and the health check. Webhooks authenticate via body
// signature, not via session or API key.
func (h HttpRouter) InstallRouter(app *fiber.App) {
	app.Get("/health", controllers.HandleHealth)
	app.Post("/webhooks/:source", controllers.HandleBillingWebhook)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
