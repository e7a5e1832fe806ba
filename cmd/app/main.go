// Command app runs the game API server: the message endpoint chat
// adapters call, read-only game endpoints, and operational routes.
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

	"github.com/dmaas/DumpsterBot_Go/internal/bootstrap"
	"github.com/dmaas/DumpsterBot_Go/internal/command"
	"github.com/dmaas/DumpsterBot_Go/internal/config"
	"github.com/dmaas/DumpsterBot_Go/internal/handler"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logCfg := logger.ProductionConfig()
	if cfg.Environment == "dev" {
		logCfg = logger.DevelopmentConfig()
	}
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg)

	handler.InitValidator()

	dbPool, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		slog.Error("Database startup failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx := context.Background()
	repos := bootstrap.InitializeRepositories(dbPool)
	services, err := bootstrap.InitializeServices(ctx, repos)
	if err != nil {
		slog.Error("Service startup failed", "error", err)
		os.Exit(1)
	}

	stopJobs := bootstrap.StartBackgroundJobs(time.Duration(cfg.MarketTickMinutes)*time.Minute, repos, services)
	defer stopJobs()

	router := command.NewRouter(services)
	srv := server.NewServer(cfg.Port, dbPool, router, services)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-sc:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}
}
