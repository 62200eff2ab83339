package webhook_handler_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	whatsapp_model "github.com/bokibot/bokibot-whatsapp/src/whatsapp/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- stub sender ---

type stubSender struct {
	mu    sync.Mutex
	calls []whatsapp_model.OutboundMessage
	err   error
}

func (s *stubSender) Send(_ context.Context, message whatsapp_model.OutboundMessage) (whatsapp_model.SendReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, message)
	if s.err != nil {
		return whatsapp_model.SendReceipt{}, s.err
	}
	return whatsapp_model.SendReceipt{
		Messages: []whatsapp_model.ReceiptMessage{{ID: "wamid.sent"}},
	}, nil
}

func (s *stubSender) sent() []whatsapp_model.OutboundMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]whatsapp_model.OutboundMessage{}, s.calls...)
}

func deliveryBody(messages ...string) string {
	items := make([]string, 0, len(messages))
	for i, body := range messages {
		items = append(items, fmt.Sprintf(
			`{"from": "555000%d", "id": "wamid.%d", "timestamp": "1700000000", "type": "text", "text": {"body": %q}}`,
			i, i, body,
		))
	}
	return fmt.Sprintf(
		`{"object": "whatsapp_business_account", "entry": [{"id": "1", "changes": [{"field": "messages", "value": {"messaging_product": "whatsapp", "messages": [%s]}}]}]}`,
		strings.Join(items, ","),
	)
}

func postRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- tests ---

func TestReceive_EchoesSingleMessage(t *testing.T) {
	sender := &stubSender{}
	app := newTestApp(sender, "")

	body := `{"object": "whatsapp_business_account", "entry": [{"id": "1", "changes": [{"field": "messages", "value": {"messaging_product": "whatsapp", "messages": [{"from": "5551234567", "id": "wamid.abc", "timestamp": "1700000000", "type": "text", "text": {"body": "hello"}}]}}]}]}`

	res, err := app.Test(postRequest(body))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	calls := sender.sent()
	require.Len(t, calls, 1)
	assert.Equal(t, "5551234567", calls[0].To)
	require.NotNil(t, calls[0].Text)
	assert.Contains(t, calls[0].Text.Body, "hello")
}

func TestReceive_StatusCallbackIsIgnored(t *testing.T) {
	sender := &stubSender{}
	app := newTestApp(sender, "")

	body := `{"object": "whatsapp_business_account", "entry": [{"id": "1", "changes": [{"field": "messages", "value": {"messaging_product": "whatsapp", "statuses": [{"id": "wamid.abc", "status": "delivered"}]}}]}]}`

	res, err := app.Test(postRequest(body))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, sender.sent())
}

func TestReceive_SendsOncePerTextMessage(t *testing.T) {
	sender := &stubSender{}
	app := newTestApp(sender, "")

	res, err := app.Test(postRequest(deliveryBody("uno", "dos", "tres")))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, sender.sent(), 3)
}

func TestReceive_SendFailureStillAcknowledges(t *testing.T) {
	sender := &stubSender{
		err: &whatsapp_model.ApiError{Recipient: "5551234567", StatusCode: http.StatusUnauthorized},
	}
	app := newTestApp(sender, "")

	res, err := app.Test(postRequest(deliveryBody("uno", "dos")))
	require.NoError(t, err)
	defer res.Body.Close()

	// Both sends fail, the webhook caller still gets its 200.
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, sender.sent(), 2)
}

func TestReceive_MalformedJSON(t *testing.T) {
	sender := &stubSender{}
	app := newTestApp(sender, "")

	res, err := app.Test(postRequest("{not json"))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Empty(t, sender.sent())
}

func TestReceive_MissingEntryKeyIsAcknowledged(t *testing.T) {
	sender := &stubSender{}
	app := newTestApp(sender, "")

	res, err := app.Test(postRequest(`{"object": "whatsapp_business_account"}`))
	require.NoError(t, err)
	defer res.Body.Close()

	// Valid JSON with an unexpected shape must not trigger redelivery.
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, sender.sent())
}

func TestReceive_SignatureEnforcedWhenSecretSet(t *testing.T) {
	sender := &stubSender{}
	app := newTestApp(sender, "app-secret")

	body := deliveryBody("hola")

	unsigned, err := app.Test(postRequest(body))
	require.NoError(t, err)
	defer unsigned.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, unsigned.StatusCode)
	assert.Empty(t, sender.sent())

	mac := hmac.New(sha256.New, []byte("app-secret"))
	mac.Write([]byte(body))
	signed := postRequest(body)
	signed.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))

	res, err := app.Test(signed)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, sender.sent(), 1)
}
