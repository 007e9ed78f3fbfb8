package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/openchatops/whatsapp-bridge/internal/clients/dialogflow"
	"github.com/openchatops/whatsapp-bridge/internal/clients/googleauth"
	"github.com/openchatops/whatsapp-bridge/internal/clients/sheets"
	"github.com/openchatops/whatsapp-bridge/internal/clients/whatsapp"
	"github.com/openchatops/whatsapp-bridge/internal/config"
	"github.com/openchatops/whatsapp-bridge/internal/controllers/webhook"
	"github.com/openchatops/whatsapp-bridge/internal/services/convlog"
	"github.com/openchatops/whatsapp-bridge/internal/services/takeover"
)

// externalCallTimeout bounds every outbound API call so a slow collaborator
// cannot hold the webhook handler past the platform's delivery deadline.
const externalCallTimeout = 15 * time.Second

// CreateServers builds all external clients and the webhook HTTP server.
func CreateServers(_ context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	httpClient := &http.Client{Timeout: externalCallTimeout}

	tokenSource, err := googleauth.New(settings.GoogleCredentials, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google token source: %w", err)
	}

	sheetsClient := sheets.New(tokenSource, httpClient)
	intentClient := dialogflow.New(settings.DialogflowProjectID, settings.DialogflowLanguage, tokenSource, httpClient)
	dispatcher := whatsapp.New(settings.WhatsAppAPIURL, settings.PhoneNumberID, settings.WhatsAppToken, httpClient)

	resolver := takeover.NewResolver(sheetsClient, settings.SheetID, settings.TakeoverRange, logger)
	convLogger := convlog.NewLogger(sheetsClient, settings.SheetID, settings.LogRange, logger)

	return CreateFiberApp(logger, settings, resolver, intentClient, dispatcher, convLogger)
}

// CreateFiberApp sets up the fiber app and registers the webhook routes.
func CreateFiberApp(logger zerolog.Logger, settings *config.Settings,
	resolver webhook.TakeoverResolver,
	intents webhook.IntentDetector,
	dispatcher webhook.ReplyDispatcher,
	convLogger webhook.ConversationLogger) (*fiber.App, error) {
	logger.Info().Msg("Starting WhatsApp Intent Bridge...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	controller := webhook.NewController(
		settings.VerifyToken,
		settings.AppSecret,
		resolver,
		intents,
		dispatcher,
		convLogger,
	)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the WhatsApp Intent Bridge!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	app.Get("/webhook", controller.VerifyWebhook)
	app.Post("/webhook", controller.HandleEvent)

	return app, nil
}
