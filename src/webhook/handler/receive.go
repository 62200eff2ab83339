package webhook_handler

import (
	"errors"
	"fmt"

	common_model "github.com/bokibot/bokibot-whatsapp/src/common/model"
	"github.com/bokibot/bokibot-whatsapp/src/metrics"
	webhook_model "github.com/bokibot/bokibot-whatsapp/src/webhook/model"
	webhook_service "github.com/bokibot/bokibot-whatsapp/src/webhook/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

// Receive processes a webhook delivery and echoes every text message
// back to its sender. Any body that decodes as JSON is acknowledged with
// 200, whatever happens afterwards: a non-200 would make Meta redeliver
// the same payload over and over.
//
//	@Summary		Receive webhook delivery
//	@Description	Accepts Meta's webhook envelope, echoes contained text messages back to their senders and always acknowledges parseable deliveries.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]string				"Delivery acknowledged"
//	@Failure		400	{object}	common_model.DescriptiveError	"Body is not valid JSON"
//	@Router			/webhook [post]
func (h *Handler) Receive(c *fiber.Ctx) error {
	deliveryID := uuid.New()

	envelope, err := webhook_service.ParseEnvelope(c.Body())
	if err != nil {
		var payloadErr *webhook_model.PayloadError
		if errors.As(err, &payloadErr) && payloadErr.Unparsable() {
			metrics.WebhookDeliveries.WithLabelValues("malformed").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(
				common_model.NewParseJsonError(err).Send(),
			)
		}

		// Valid JSON with an unexpected shape still gets acknowledged.
		metrics.WebhookDeliveries.WithLabelValues("rejected").Inc()
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Ignoring delivery %s: %s", deliveryID, err),
		)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ignored"})
	}

	messages := webhook_service.ExtractTextMessages(envelope)
	if len(messages) == 0 {
		// Status callback or non-text delivery.
		metrics.WebhookDeliveries.WithLabelValues("ignored").Inc()
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ignored"})
	}

	ctx := c.UserContext()

	// Failures stay contained per message: a failed echo is logged and
	// never cancels sibling sends or the 200 acknowledgment.
	var eg errgroup.Group
	for _, message := range messages {
		eg.Go(func() error {
			reply := webhook_service.BuildReply(message)
			if _, err := h.sender.Send(ctx, reply); err != nil {
				pterm.DefaultLogger.Warn(
					fmt.Sprintf("Echo reply to %s failed on delivery %s: %s", message.Sender, deliveryID, err),
				)
			}
			return nil
		})
	}
	eg.Wait()

	metrics.WebhookDeliveries.WithLabelValues("processed").Inc()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "sent"})
}
