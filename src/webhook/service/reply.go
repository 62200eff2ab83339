package webhook_service

import (
	"fmt"

	webhook_model "github.com/bokibot/bokibot-whatsapp/src/webhook/model"
	whatsapp_model "github.com/bokibot/bokibot-whatsapp/src/whatsapp/model"
)

const replyTemplate = "👋 Hola, mundo. Recibí: %s"

// BuildReply builds the echo reply for a received text message. Pure and
// deterministic: the same input always yields the same outbound message.
func BuildReply(message webhook_model.TextMessage) whatsapp_model.OutboundMessage {
	return whatsapp_model.
		NewTextMessage(message.Sender, fmt.Sprintf(replyTemplate, message.Body)).
		AsReplyTo(message.MessageID)
}
