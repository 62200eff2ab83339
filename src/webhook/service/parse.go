package webhook_service

import (
	"encoding/json"

	webhook_model "github.com/bokibot/bokibot-whatsapp/src/webhook/model"
)

// ParseEnvelope decodes a raw webhook body. Structural validation only:
// the JSON must decode and carry the top-level entry key. Business values
// (phone numbers, timestamps) are not checked here.
func ParseEnvelope(raw []byte) (*webhook_model.InboundEnvelope, error) {
	var envelope webhook_model.InboundEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &webhook_model.PayloadError{Reason: "body is not valid JSON", Err: err}
	}

	// A nil slice means the key was absent; an empty entry array is a
	// valid, message-less delivery.
	if envelope.Entry == nil {
		return nil, &webhook_model.PayloadError{Reason: "missing entry key"}
	}

	return &envelope, nil
}
