package webhook_router

import (
	auth_middleware "github.com/bokibot/bokibot-whatsapp/src/auth/middleware"
	webhook_handler "github.com/bokibot/bokibot-whatsapp/src/webhook/handler"
	"github.com/gofiber/fiber/v2"
)

// Route registers the webhook endpoint. Signature verification is only
// enforced when an app secret is configured, matching Meta's setup flow
// where the secret is optional.
func Route(app *fiber.App, handler *webhook_handler.Handler, appSecret string) {
	group := app.Group("/webhook")

	group.Get("/", handler.Verify)

	post := []fiber.Handler{}
	if appSecret != "" {
		post = append(post, auth_middleware.VerifyMetaSignature(appSecret))
	}
	post = append(post, handler.Receive)
	group.Post("/", post...)
}
