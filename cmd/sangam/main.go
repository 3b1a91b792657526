package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/sangam/adapter/cli"
	"github.com/felixgeelhaar/sangam/adapter/cli/schedule"
	"github.com/felixgeelhaar/sangam/internal/app"
	catalogCommands "github.com/felixgeelhaar/sangam/internal/catalog/application/commands"
	"github.com/felixgeelhaar/sangam/pkg/config"
	"github.com/felixgeelhaar/sangam/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development defaults", "error", err)
		cfg = &config.Config{AppEnv: "development", StoreDriver: "memory"}
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsProduction() {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
		logger.Warn("failed to initialize container, running in limited mode", "error", err)
	} else {
		defer container.Close()

		if cfg.SeedCatalog {
			if err := container.SeedCatalog.Handle(ctx, catalogCommands.SeedCatalogCommand{}); err != nil {
				logger.Warn("failed to seed catalog", "error", err)
			}
		}

		cli.SetApp(container)
		defer container.ScheduleSync.Wait()
	}

	cli.AddCommand(schedule.Cmd)

	cli.Execute()
}
