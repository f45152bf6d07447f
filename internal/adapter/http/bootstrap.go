package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"todoapi/internal/adapter/database"
	"todoapi/internal/core/port"
	"todoapi/internal/core/telemetry"
	"todoapi/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// StartServer serves the API until ctx is cancelled, then drains in-flight
// requests and closes the store.
func StartServer(ctx context.Context, config *shared.AppConfig, logger *shared.Logger, tel *shared.Telemetry) error {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(ctx, config.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	var (
		probe   port.Telemetry
		metrics *shared.AppMetrics
	)

	if tel != nil {
		metrics = tel.Metrics
		probe = telemetry.NewOTELProbe(logger.Logger, metrics)

		if err := shared.RegisterDBStats(tel.PrometheusRegistry, db.DB, config.Telemetry.ServiceName); err != nil {
			logger.Warn("Failed to register database pool metrics", zap.Error(err))
		}
	}

	container, err := NewContainer(db, config, logger, probe)
	if err != nil {
		return err
	}

	router := NewRouter(container, config.Telemetry.ServiceName, metrics, logger)

	srv := &http.Server{
		Addr:         ":" + config.Server.Port,
		Handler:      router,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	logger.Info("Server starting",
		zap.String("port", config.Server.Port),
		zap.String("environment", config.Environment),
		zap.Bool("external_identity", config.Identity.External()),
	)

	serveErr := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
