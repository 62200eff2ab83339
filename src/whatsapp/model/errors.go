package whatsapp_model

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrorEnvelope is the error body returned by the Graph API on non-2xx.
type ErrorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// ApiError is the domain error for a failed send. StatusCode is zero for
// transport failures; Code/ErrorType/Message are filled when Meta's error
// envelope parsed.
type ApiError struct {
	Recipient     string
	StatusCode    int
	Code          int
	ErrorType     string
	Message       string
	CorrelationID uuid.UUID
	Err           error
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("WhatsApp API call to %s failed: %s", e.Recipient, e.Err)
	}
	return fmt.Sprintf(
		"WhatsApp API rejected message to %s with status %d (code %d, type %s): %s",
		e.Recipient, e.StatusCode, e.Code, e.ErrorType, e.Message,
	)
}

func (e *ApiError) Unwrap() error {
	return e.Err
}
