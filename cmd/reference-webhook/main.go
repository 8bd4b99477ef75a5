package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/server-garage/pkg/runner"
	"github.com/DIMO-Network/webhook-probe/internal/app"
	"github.com/DIMO-Network/webhook-probe/internal/config"
	"github.com/DIMO-Network/webhook-probe/internal/reference"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// reference-webhook serves a webhook that passes every probe scenario.
func main() {
	logger := logging.GetAndSetDefaultLogger("reference-webhook")
	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-mainCtx.Done()
		logger.Info().Msg("Received signal, shutting down...")
		cancel()
	}()

	runnerGroup, runnerCtx := errgroup.WithContext(mainCtx)

	envFile := flag.String("env-file", ".env", "path to env file")
	flag.Parse()

	settings, err := env.LoadSettings[config.ReferenceSettings](*envFile)
	if err != nil {
		log.Fatalf("could not load settings: %s", err)
	}
	settings.ApplyDefaults()

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("could not parse log level: %s", err)
	}
	zerolog.SetGlobalLevel(level)
	logger = logging.GetAndSetDefaultLogger(settings.ServiceName)

	notifier := reference.NewCallbackNotifier(nil, settings.CallbackBaseURL)
	webhookController := reference.NewWebhookController(settings.WebhookToken, notifier, settings.DedupeTTL)
	webhookApp := app.CreateReferenceApp(logger, webhookController)

	logger.Info().Str("addr", settings.ListenAddr).Str("callbackBaseUrl", settings.CallbackBaseURL).Msg("Starting reference webhook")
	runner.RunFiber(runnerCtx, runnerGroup, webhookApp, settings.ListenAddr)

	if err := runnerGroup.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed.")
	}
	webhookController.Wait()
	logger.Info().Msg("Server stopped.")
}
