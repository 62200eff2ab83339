package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bokibot/bokibot-whatsapp/src/config/env"
	health_router "github.com/bokibot/bokibot-whatsapp/src/health/router"
	"github.com/bokibot/bokibot-whatsapp/src/metrics"
	"github.com/bokibot/bokibot-whatsapp/src/validators"
	webhook_handler "github.com/bokibot/bokibot-whatsapp/src/webhook/handler"
	webhook_router "github.com/bokibot/bokibot-whatsapp/src/webhook/router"
	whatsapp_model "github.com/bokibot/bokibot-whatsapp/src/whatsapp/model"
	whatsapp_service "github.com/bokibot/bokibot-whatsapp/src/whatsapp/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/pterm/pterm"
)

func serve() {
	app := fiber.New()
	app.Use(cors.New())

	validators.InitValidators()

	// Credentials are assembled once here and handed to the client and
	// handler constructors; nothing reads env vars past this point.
	credentials := whatsapp_model.Credentials{
		AccessToken:   env.MetaBotToken,
		PhoneNumberID: env.MetaNumberID,
		VerifyToken:   env.MetaVerifyToken,
		ApiVersion:    env.MetaVersion,
		AppSecret:     env.MetaAppSecret,
	}
	if err := validators.Validator().Struct(&credentials); err != nil {
		pterm.DefaultLogger.Fatal(
			fmt.Sprintf("Invalid WhatsApp configuration: %s", err),
		)
	}

	client := whatsapp_service.NewClient(credentials)
	hook := webhook_handler.New(credentials.VerifyToken, client)

	// Serving http endpoints
	health_router.Route(app)
	webhook_router.Route(app, hook, credentials.AppSecret)
	metrics.Route(app)

	// Setup graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		pterm.DefaultLogger.Info("Shutdown signal received, stopping server...")
		app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf(":%s", env.ServerPort))
	pterm.DefaultLogger.Fatal(
		fmt.Sprintf("%v", err),
	)
}
