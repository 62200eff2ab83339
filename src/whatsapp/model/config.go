package whatsapp_model

// DefaultGraphHost is Meta's Graph API base URL.
const DefaultGraphHost = "https://graph.facebook.com"

// Credentials holds the Cloud API access data. Loaded once at startup,
// read-only afterwards.
type Credentials struct {
	AccessToken   string `validate:"required"`
	PhoneNumberID string `validate:"required"`
	VerifyToken   string `validate:"required"`
	ApiVersion    string `validate:"required"`
	// AppSecret enables webhook signature verification when set.
	AppSecret string
}
