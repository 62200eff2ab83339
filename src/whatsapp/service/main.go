package whatsapp_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bokibot/bokibot-whatsapp/src/metrics"
	"github.com/bokibot/bokibot-whatsapp/src/validators"
	whatsapp_model "github.com/bokibot/bokibot-whatsapp/src/whatsapp/model"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

const defaultTimeout = 10 * time.Second

// Client issues authenticated calls to the Cloud API messages endpoint.
// One attempt per call, no retry; Meta redelivers webhooks on its own.
type Client struct {
	credentials whatsapp_model.Credentials
	http        *http.Client
	messagesURL string
}

// NewClient builds a client against Meta's Graph API host.
func NewClient(credentials whatsapp_model.Credentials) *Client {
	return NewClientWithHTTP(
		credentials,
		whatsapp_model.DefaultGraphHost,
		&http.Client{Timeout: defaultTimeout},
	)
}

// NewClientWithHTTP builds a client against a custom host with a custom
// http.Client. Used by tests to inject fake Graph API responses.
func NewClientWithHTTP(credentials whatsapp_model.Credentials, host string, httpClient *http.Client) *Client {
	return &Client{
		credentials: credentials,
		http:        httpClient,
		messagesURL: fmt.Sprintf(
			"%s/%s/%s/messages",
			host,
			credentials.ApiVersion,
			credentials.PhoneNumberID,
		),
	}
}

// Send posts an outbound message and returns Meta's receipt. Transport
// and non-2xx failures both come back as *whatsapp_model.ApiError.
func (c *Client) Send(ctx context.Context, message whatsapp_model.OutboundMessage) (whatsapp_model.SendReceipt, error) {
	var receipt whatsapp_model.SendReceipt

	if err := validators.Validator().Struct(&message); err != nil {
		return receipt, fmt.Errorf("invalid outbound message: %w", err)
	}

	correlationID := uuid.New()

	body, err := c.post(ctx, message.To, correlationID, message)
	if err != nil {
		metrics.WhatsAppSends.WithLabelValues("error").Inc()
		return receipt, err
	}

	if err := json.Unmarshal(body, &receipt); err != nil {
		metrics.WhatsAppSends.WithLabelValues("error").Inc()
		return receipt, &whatsapp_model.ApiError{
			Recipient:     message.To,
			CorrelationID: correlationID,
			Err:           fmt.Errorf("unable to parse send receipt: %w", err),
		}
	}

	metrics.WhatsAppSends.WithLabelValues("ok").Inc()
	return receipt, nil
}

// SendText is the convenience path used by the echo handler.
func (c *Client) SendText(ctx context.Context, to string, text string) (whatsapp_model.SendReceipt, error) {
	return c.Send(ctx, whatsapp_model.NewTextMessage(to, text))
}

func (c *Client) post(ctx context.Context, recipient string, correlationID uuid.UUID, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.messagesURL, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unable to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.credentials.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &whatsapp_model.ApiError{
			Recipient:     recipient,
			CorrelationID: correlationID,
			Err:           err,
		}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &whatsapp_model.ApiError{
			Recipient:     recipient,
			StatusCode:    res.StatusCode,
			CorrelationID: correlationID,
			Err:           err,
		}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := &whatsapp_model.ApiError{
			Recipient:     recipient,
			StatusCode:    res.StatusCode,
			CorrelationID: correlationID,
		}

		var envelope whatsapp_model.ErrorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.ErrorType = envelope.Error.Type
			apiErr.Message = envelope.Error.Message
		} else {
			apiErr.Message = string(body)
		}

		pterm.DefaultLogger.Error(
			fmt.Sprintf("WA %d (correlation %s) – %s", res.StatusCode, correlationID, string(body)),
		)
		return nil, apiErr
	}

	return body, nil
}
