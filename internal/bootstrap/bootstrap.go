// Package bootstrap wires configuration, storage and services together
// for the entrypoints.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmaas/DumpsterBot_Go/internal/blackjack"
	"github.com/dmaas/DumpsterBot_Go/internal/command"
	"github.com/dmaas/DumpsterBot_Go/internal/config"
	"github.com/dmaas/DumpsterBot_Go/internal/database"
	"github.com/dmaas/DumpsterBot_Go/internal/database/postgres"
	"github.com/dmaas/DumpsterBot_Go/internal/duel"
	"github.com/dmaas/DumpsterBot_Go/internal/dumpster"
	"github.com/dmaas/DumpsterBot_Go/internal/emoji"
	"github.com/dmaas/DumpsterBot_Go/internal/lottery"
	"github.com/dmaas/DumpsterBot_Go/internal/quotes"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
	"github.com/dmaas/DumpsterBot_Go/internal/scheduler"
	"github.com/dmaas/DumpsterBot_Go/internal/stocks"
	"github.com/dmaas/DumpsterBot_Go/internal/user"
	"github.com/dmaas/DumpsterBot_Go/internal/worker"
)

// Database pool tuning.
const (
	PoolMaxConns    = 10
	PoolMaxIdleTime = 5 * time.Minute
	PoolMaxLifetime = 30 * time.Minute
)

// Background job pool tuning.
const (
	backgroundWorkers   = 2
	backgroundQueueSize = 16
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User    repository.User
	Lottery repository.Lottery
	Stock   repository.Stock
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:    postgres.NewUserRepository(dbPool),
		Lottery: postgres.NewLotteryRepository(dbPool),
		Stock:   postgres.NewStockRepository(dbPool),
	}
}

// OpenDatabase migrates the schema and opens the connection pool.
func OpenDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	pool, err := database.NewPool(connString, PoolMaxConns, PoolMaxIdleTime, PoolMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	return pool, nil
}

// InitializeServices builds the full game service bundle. The stock
// market is seeded as part of initialization.
func InitializeServices(ctx context.Context, repos *Repositories) (command.Services, error) {
	rng := random.NewSecureSource()
	catalog := emoji.DefaultCatalog()

	stockService := stocks.NewService(repos.User, repos.Stock, rng)
	if err := stockService.Init(ctx); err != nil {
		return command.Services{}, fmt.Errorf("failed to initialize stock market: %w", err)
	}

	quoteService, err := quotes.NewService(rng)
	if err != nil {
		return command.Services{}, err
	}

	return command.Services{
		User:      user.NewService(repos.User, rng),
		Duel:      duel.NewService(repos.User, rng),
		Blackjack: blackjack.NewService(repos.User, rng),
		Lottery:   lottery.NewService(repos.User, repos.Lottery, rng),
		Dumpster:  dumpster.NewService(repos.User, repos.Lottery, catalog, rng),
		Emoji:     emoji.NewService(repos.User, catalog),
		Stocks:    stockService,
		Quotes:    quoteService,
	}, nil
}

// StartBackgroundJobs schedules the periodic market tick and the
// lottery pot gauge refresh. The returned stop function drains both
// the scheduler and the worker pool.
func StartBackgroundJobs(interval time.Duration, repos *Repositories, svc command.Services) func() {
	pool := worker.NewPool(backgroundWorkers, backgroundQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(interval, &worker.MarketTickJob{Stocks: svc.Stocks})
	sched.Schedule(interval, &worker.PotGaugesJob{Lottery: repos.Lottery})

	return func() {
		sched.Stop()
		pool.Stop()
	}
}
