package app

import (
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/webhook-probe/internal/controllers/callback"
	"github.com/DIMO-Network/webhook-probe/internal/reference"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func newFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})
	return app
}

// CreateReceiverApp sets up the routes that receive confirm and cancel callbacks.
func CreateReceiverApp(logger zerolog.Logger, recorder callback.Recorder) *fiber.App {
	logger.Info().Msg("Registering callback routes...")
	app := newFiberApp()

	callbackController := callback.NewCallbackController(recorder)
	app.Post("/confirmar", callbackController.Confirm)
	app.Post("/cancelar", callbackController.Cancel)

	return app
}

// CreateReferenceApp sets up the reference webhook routes.
func CreateReferenceApp(logger zerolog.Logger, webhookController *reference.WebhookController) *fiber.App {
	logger.Info().Msg("Registering reference webhook routes...")
	app := newFiberApp()

	app.Post("/webhook", webhookController.HandleTransaction)

	return app
}
