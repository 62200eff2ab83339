package webhook_model

// VerificationQuery carries the hub.* query parameters of Meta's
// subscription handshake. Lives for one GET request only.
type VerificationQuery struct {
	Mode      string `query:"hub.mode"`
	Token     string `query:"hub.verify_token"`
	Challenge string `query:"hub.challenge"`
}
