package webhook_service

import (
	webhook_model "github.com/bokibot/bokibot-whatsapp/src/webhook/model"
)

// ExtractTextMessages walks the envelope and returns every text message
// as a (sender, body) pair. Non-text messages and status-only changes are
// skipped, an empty slice is a normal result.
func ExtractTextMessages(envelope *webhook_model.InboundEnvelope) []webhook_model.TextMessage {
	messages := []webhook_model.TextMessage{}

	for _, entry := range envelope.Entry {
		for _, change := range entry.Changes {
			for _, message := range change.Value.Messages {
				if message.Type != "text" || message.Text == nil {
					continue
				}
				messages = append(messages, webhook_model.TextMessage{
					Sender:    message.From,
					Body:      message.Text.Body,
					MessageID: message.ID,
				})
			}
		}
	}

	return messages
}
