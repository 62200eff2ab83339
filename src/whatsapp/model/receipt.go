package whatsapp_model

// SendReceipt is the Cloud API response to a successful send.
type SendReceipt struct {
	MessagingProduct string           `json:"messaging_product"`
	Contacts         []ReceiptContact `json:"contacts"`
	Messages         []ReceiptMessage `json:"messages"`
}

type ReceiptContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

type ReceiptMessage struct {
	ID string `json:"id"`
}

// MessageID returns the id Meta assigned to the sent message, empty when
// the receipt carries none.
func (r SendReceipt) MessageID() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].ID
}
