package health_handler

import (
	"github.com/gofiber/fiber/v2"
)

// GetRoot returns the service banner.
//
//	@Summary		Service banner
//	@Description	Returns the service name. Useful as a liveness probe.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/ [get]
func GetRoot(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "BokiBot – WhatsApp",
	})
}
