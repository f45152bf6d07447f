package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	server "todoapi/internal/adapter/http"
	"todoapi/internal/shared"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	config, err := shared.LoadConfig()

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := shared.NewLogger(config.Telemetry.ServiceName, config.Log.Level)

	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry, err := shared.InitTelemetry(ctx, config.Telemetry, config.Environment, logger)

	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	defer telemetry.Shutdown(context.Background())

	telemetry.Metrics.StartSystemMetrics(ctx)

	if err := server.StartServer(ctx, config, logger, telemetry); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("Shut down gracefully")

	return nil
}
