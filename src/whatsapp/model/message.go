package whatsapp_model

// MessagingProduct is the fixed product discriminator of the Cloud API.
const MessagingProduct = "whatsapp"

type MessageType string

const (
	TypeText        MessageType = "text"
	TypeInteractive MessageType = "interactive"
)

// Text is the body of a text message. Link previews stay disabled.
type Text struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body" validate:"required"`
}

// Context threads a message as a reply to a previous one.
type Context struct {
	MessageID string `json:"message_id" validate:"required"`
}

// OutboundMessage is the JSON body posted to the /messages endpoint.
// Built fresh per send, never mutated afterwards.
type OutboundMessage struct {
	MessagingProduct string       `json:"messaging_product" validate:"required,eq=whatsapp"`
	To               string       `json:"to" validate:"required"`
	Type             MessageType  `json:"type" validate:"required"`
	Text             *Text        `json:"text,omitempty" validate:"required_if=Type text"`
	Interactive      *Interactive `json:"interactive,omitempty" validate:"required_if=Type interactive"`
	Context          *Context     `json:"context,omitempty"`
}

// NewTextMessage builds a plain text message for the given recipient.
func NewTextMessage(to string, body string) OutboundMessage {
	return OutboundMessage{
		MessagingProduct: MessagingProduct,
		To:               to,
		Type:             TypeText,
		Text: &Text{
			PreviewURL: false,
			Body:       body,
		},
	}
}

// AsReplyTo threads the message as a reply to messageID. No-op when the
// id is empty.
func (m OutboundMessage) AsReplyTo(messageID string) OutboundMessage {
	if messageID == "" {
		return m
	}
	m.Context = &Context{MessageID: messageID}
	return m
}
