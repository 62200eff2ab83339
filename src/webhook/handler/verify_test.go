package webhook_handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	webhook_handler "github.com/bokibot/bokibot-whatsapp/src/webhook/handler"
	webhook_router "github.com/bokibot/bokibot-whatsapp/src/webhook/router"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(sender webhook_handler.Sender, appSecret string) *fiber.App {
	app := fiber.New()
	webhook_router.Route(app, webhook_handler.New("secret-token", sender), appSecret)
	return app
}

func verifyRequest(mode, token, challenge string) *http.Request {
	query := url.Values{}
	query.Set("hub.mode", mode)
	query.Set("hub.verify_token", token)
	query.Set("hub.challenge", challenge)
	return httptest.NewRequest(http.MethodGet, "/webhook?"+query.Encode(), nil)
}

func TestVerify_Success(t *testing.T) {
	app := newTestApp(&stubSender{}, "")

	res, err := app.Test(verifyRequest("subscribe", "secret-token", "challenge-1234"))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "challenge-1234", string(body))
}

func TestVerify_Failures(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		token     string
		challenge string
	}{
		{name: "wrong token", mode: "subscribe", token: "WRONG", challenge: "xyz"},
		{name: "wrong mode", mode: "unsubscribe", token: "secret-token", challenge: "xyz"},
		{name: "missing token", mode: "subscribe", token: "", challenge: "xyz"},
		{name: "missing challenge", mode: "subscribe", token: "secret-token", challenge: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubSender{}, "")

			res, err := app.Test(verifyRequest(tt.mode, tt.token, tt.challenge))
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, http.StatusForbidden, res.StatusCode)

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.NotEqual(t, "xyz", string(body))
		})
	}
}
