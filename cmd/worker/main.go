// The worker keeps the query cache warm and exposes a health endpoint.
// It refetches the journey catalog and the configured user's schedule on
// the staleness-window interval, so reads stay fast after entries expire.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixgeelhaar/sangam/internal/app"
	catalogQueries "github.com/felixgeelhaar/sangam/internal/catalog/application/queries"
	"github.com/felixgeelhaar/sangam/pkg/config"
	"github.com/felixgeelhaar/sangam/pkg/observability"
	"github.com/goccy/go-json"
)

func main() {
	logger := observability.LoggerFromEnv()

	logger.Info("starting sangam worker")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	server := healthServer(container, cfg.WorkerHealthAddr, logger)
	defer shutdownServer(server, logger)

	warm := func() {
		warmCtx, warmCancel := context.WithTimeout(ctx, cfg.StoreCallTimeout)
		defer warmCancel()

		if _, err := container.ListJourneys.Handle(warmCtx, catalogQueries.ListJourneysQuery{}); err != nil {
			logger.Warn("catalog warmup failed", "error", err)
		}
		if _, err := container.ListFeaturedJourneys.Handle(warmCtx, catalogQueries.ListFeaturedJourneysQuery{}); err != nil {
			logger.Warn("featured catalog warmup failed", "error", err)
		}
		if userID, err := container.Identity.CurrentUserID(warmCtx); err == nil {
			if _, err := container.ListSchedule.Refresh(warmCtx, userID.String()); err != nil {
				logger.Warn("schedule warmup failed", "error", err)
			}
		}
	}

	logger.Info("cache warmer running",
		"interval", cfg.CacheStalenessWindow,
		"health_addr", cfg.WorkerHealthAddr,
	)

	warm()
	ticker := time.NewTicker(cfg.CacheStalenessWindow)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			container.ScheduleSync.Wait()
			logger.Info("worker stopped")
			return
		case <-ticker.C:
			warm()
		}
	}
}

func healthServer(container *app.Container, addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		status, results := container.Health.RunAll(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if status != observability.HealthStatusUp {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": status,
			"checks": results,
		})
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", "error", err)
		}
	}()
	return server
}

func shutdownServer(server *http.Server, logger *slog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("health server shutdown failed", "error", err)
	}
}
