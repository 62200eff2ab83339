package webhook_handler

import (
	"context"

	whatsapp_model "github.com/bokibot/bokibot-whatsapp/src/whatsapp/model"
)

// Sender sends one outbound message. Satisfied by whatsapp_service.Client.
type Sender interface {
	Send(ctx context.Context, message whatsapp_model.OutboundMessage) (whatsapp_model.SendReceipt, error)
}

// Handler serves the two-phase webhook contract: GET verification and
// POST message deliveries.
type Handler struct {
	verifyToken string
	sender      Sender
}

func New(verifyToken string, sender Sender) *Handler {
	return &Handler{
		verifyToken: verifyToken,
		sender:      sender,
	}
}
