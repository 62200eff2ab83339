package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// WebhookDeliveries counts POST /webhook outcomes by result:
	// processed, ignored, rejected or malformed.
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bokibot_webhook_deliveries_total",
		Help: "Inbound webhook deliveries by processing result.",
	}, []string{"result"})

	// WhatsAppSends counts outbound Cloud API send attempts.
	WhatsAppSends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bokibot_whatsapp_sends_total",
		Help: "Outbound WhatsApp send attempts by result.",
	}, []string{"result"})
)

func Route(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
