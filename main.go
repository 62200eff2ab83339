package main

import (
	_ "github.com/bokibot/bokibot-whatsapp/src/config/env"
	_ "github.com/bokibot/bokibot-whatsapp/src/server"
)

// @title						BokiBot WhatsApp Server API
// @version					0.1.0
// @description				Webhook-driven WhatsApp Cloud API relay. Handles webhook verification, inbound message deliveries and outbound echo replies.
// @contact.name				BokiBot Dev Team
// @license.name				MIT
// @license.url				https://opensource.org/licenses/MIT
// @BasePath					/
// @schemes					http https
func main() {
	// Default behavior: server starts via init() functions
}
