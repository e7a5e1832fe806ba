// Command discord runs the bot against Discord directly, without the
// HTTP server in between.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmaas/DumpsterBot_Go/internal/bootstrap"
	"github.com/dmaas/DumpsterBot_Go/internal/command"
	"github.com/dmaas/DumpsterBot_Go/internal/config"
	"github.com/dmaas/DumpsterBot_Go/internal/discord"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	if cfg.DiscordToken == "" {
		slog.Error("DISCORD_TOKEN is required")
		os.Exit(1)
	}

	logCfg := logger.ProductionConfig()
	if cfg.Environment == "dev" {
		logCfg = logger.DevelopmentConfig()
	}
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg)

	dbPool, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		slog.Error("Database startup failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)
	services, err := bootstrap.InitializeServices(context.Background(), repos)
	if err != nil {
		slog.Error("Service startup failed", "error", err)
		os.Exit(1)
	}

	stopJobs := bootstrap.StartBackgroundJobs(time.Duration(cfg.MarketTickMinutes)*time.Minute, repos, services)
	defer stopJobs()

	bot, err := discord.New(discord.Config{
		Token:      cfg.DiscordToken,
		ChannelIDs: cfg.ChannelIDs,
		ModRoles:   cfg.ModRoles,
	}, command.NewRouter(services))
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot stopped", "error", err)
		os.Exit(1)
	}
}
