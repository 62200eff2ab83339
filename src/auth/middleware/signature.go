package auth_middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	common_model "github.com/bokibot/bokibot-whatsapp/src/common/model"
	"github.com/gofiber/fiber/v2"
)

const signatureHeader = "X-Hub-Signature-256"

// VerifyMetaSignature checks the HMAC-SHA256 signature Meta attaches to
// webhook deliveries against the app secret.
func VerifyMetaSignature(appSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get(signatureHeader)
		if !strings.HasPrefix(signature, "sha256=") {
			return c.Status(fiber.StatusUnauthorized).JSON(
				common_model.NewApiError("missing webhook signature", nil, "auth_middleware").Send(),
			)
		}

		expected, err := hex.DecodeString(strings.TrimPrefix(signature, "sha256="))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(
				common_model.NewApiError("malformed webhook signature", err, "auth_middleware").Send(),
			)
		}

		mac := hmac.New(sha256.New, []byte(appSecret))
		mac.Write(c.Body())
		if !hmac.Equal(mac.Sum(nil), expected) {
			return c.Status(fiber.StatusUnauthorized).JSON(
				common_model.NewApiError("invalid webhook signature", nil, "auth_middleware").Send(),
			)
		}

		return c.Next()
	}
}
