package webhook_model

// VerificationError signals a failed subscription handshake, surfaced
// to Meta as HTTP 403.
type VerificationError struct {
	Reason string
}

func (e *VerificationError) Error() string {
	return "webhook verification failed: " + e.Reason
}

// PayloadError signals a POST body this relay cannot process. Err is set
// when the body was not valid JSON at all.
type PayloadError struct {
	Reason string
	Err    error
}

func (e *PayloadError) Error() string {
	if e.Err != nil {
		return "invalid webhook payload: " + e.Reason + ": " + e.Err.Error()
	}
	return "invalid webhook payload: " + e.Reason
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

// Unparsable reports whether the body failed JSON decoding, the only
// payload failure answered with a non-200 status.
func (e *PayloadError) Unparsable() bool {
	return e.Err != nil
}
