package webhook_handler

import (
	common_model "github.com/bokibot/bokibot-whatsapp/src/common/model"
	webhook_model "github.com/bokibot/bokibot-whatsapp/src/webhook/model"
	"github.com/gofiber/fiber/v2"
)

// Verify answers Meta's subscription handshake.
//
//	@Summary		Verify webhook subscription
//	@Description	Echoes hub.challenge as plain text when hub.mode is "subscribe" and hub.verify_token matches the configured token.
//	@Tags			Webhook
//	@Produce		plain
//	@Param			hub.mode			query		string	true	"Must be subscribe"
//	@Param			hub.verify_token	query		string	true	"Configured verify token"
//	@Param			hub.challenge		query		string	true	"Opaque challenge to echo back"
//	@Success		200					{string}	string	"The challenge"
//	@Failure		403					{object}	common_model.DescriptiveError	"Verification failed"
//	@Router			/webhook [get]
func (h *Handler) Verify(c *fiber.Ctx) error {
	query := webhook_model.VerificationQuery{
		Mode:      c.Query("hub.mode"),
		Token:     c.Query("hub.verify_token"),
		Challenge: c.Query("hub.challenge"),
	}

	if err := h.verify(query); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(
			common_model.NewApiError("verification failed", err, "webhook_handler").Send(),
		)
	}

	return c.Status(fiber.StatusOK).SendString(query.Challenge)
}

func (h *Handler) verify(query webhook_model.VerificationQuery) error {
	if query.Mode != "subscribe" {
		return &webhook_model.VerificationError{Reason: "unexpected hub.mode " + query.Mode}
	}
	if query.Token == "" || query.Token != h.verifyToken {
		return &webhook_model.VerificationError{Reason: "verify token mismatch"}
	}
	if query.Challenge == "" {
		return &webhook_model.VerificationError{Reason: "missing hub.challenge"}
	}
	return nil
}
