package whatsapp_service

import (
	"context"
	"errors"

	whatsapp_model "github.com/bokibot/bokibot-whatsapp/src/whatsapp/model"
	"github.com/google/uuid"
)

type markAsReadPayload struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

// MarkAsRead flags an inbound message as read so the sender sees the
// blue check marks.
func (c *Client) MarkAsRead(ctx context.Context, messageID string) error {
	if messageID == "" {
		return errors.New("message id is required")
	}

	_, err := c.post(ctx, "", uuid.New(), markAsReadPayload{
		MessagingProduct: whatsapp_model.MessagingProduct,
		Status:           "read",
		MessageID:        messageID,
	})
	return err
}
