package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/server-garage/pkg/runner"
	"github.com/DIMO-Network/webhook-probe/internal/app"
	"github.com/DIMO-Network/webhook-probe/internal/callbacks"
	"github.com/DIMO-Network/webhook-probe/internal/config"
	"github.com/DIMO-Network/webhook-probe/internal/probe"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Usage: webhook-probe [flags] [event] [transaction_id] [amount] [currency] [timestamp] [token]
func main() {
	logger := logging.GetAndSetDefaultLogger("webhook-probe")
	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	envFile := flag.String("env-file", ".env", "path to env file")
	uniqueID := flag.Bool("unique-id", false, "append a random suffix to the transaction id")
	flag.Parse()

	settings, err := env.LoadSettings[config.Settings](*envFile)
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

	receiverCtx, stopReceiver := context.WithCancel(mainCtx)
	runnerGroup, runnerCtx := errgroup.WithContext(receiverCtx)

	store := callbacks.NewStore()
	receiverApp := app.CreateReceiverApp(logger, store)
	logger.Info().Str("addr", settings.ReceiverAddr).Msg("Starting callback receiver")
	runner.RunFiber(runnerCtx, runnerGroup, receiverApp, settings.ReceiverAddr)

	select {
	case <-time.After(settings.StartupDelay):
	case <-runnerCtx.Done():
	}

	input := probe.InputFromArgs(flag.Args())
	if *uniqueID {
		input.Payload.TransactionID += "-" + uuid.NewString()
	}

	client := probe.NewWebhookClient(&http.Client{Timeout: settings.RequestTimeout}, settings.WebhookURL)
	probeRunner := probe.NewRunner(client, store, settings.CallbackWait)
	logger.Info().
		Str("url", client.URL()).
		Str("transactionId", input.Payload.TransactionID).
		Msg("Running webhook scenarios")

	report, runErr := probeRunner.Run(logger.WithContext(runnerCtx), input)

	stopReceiver()
	if err := runnerGroup.Wait(); err != nil {
		logger.Error().Err(err).Msg("Callback receiver failed")
	}

	logger.Info().
		Bool("aborted", report.Aborted).
		Msgf("%d/%d tests completed.", report.Passed, report.Total)
	logger.Info().Strs("confirmations", store.Confirmations()).Msg("Confirmations received")
	logger.Info().Strs("cancellations", store.Cancellations()).Msg("Cancellations received")

	if runErr != nil && !probe.IsUnreachable(runErr) {
		logger.Error().Err(runErr).Msg("Scenario run stopped")
	}
	if runErr != nil || report.Passed != report.Total {
		cancel()
		os.Exit(1)
	}
}
