package health_router

import (
	health_handler "github.com/bokibot/bokibot-whatsapp/src/health/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app *fiber.App) {
	app.Get("/", health_handler.GetRoot)
}
