package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
)

// StockRepository implements repository.Stock backed by PostgreSQL
type StockRepository struct {
	db *pgxpool.Pool
}

// NewStockRepository creates a stock repository on the given pool.
func NewStockRepository(db *pgxpool.Pool) repository.Stock {
	return &StockRepository{db: db}
}

func (r *StockRepository) GetStock(ctx context.Context, symbol string) (*domain.Stock, error) {
	var s domain.Stock
	err := r.db.QueryRow(ctx, sqlSelectStock, symbol).Scan(&s.Symbol, &s.CurrentPrice, &s.LastPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stock %q: %w", symbol, err)
	}
	return &s, nil
}

func (r *StockRepository) GetAllStocks(ctx context.Context) ([]domain.Stock, error) {
	rows, err := r.db.Query(ctx, sqlSelectAllStocks)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocks: %w", err)
	}
	defer rows.Close()

	var stocks []domain.Stock
	for rows.Next() {
		var s domain.Stock
		if err := rows.Scan(&s.Symbol, &s.CurrentPrice, &s.LastPrice); err != nil {
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

func (r *StockRepository) UpsertStock(ctx context.Context, stock *domain.Stock) error {
	_, err := r.db.Exec(ctx, sqlUpsertStock, stock.Symbol, stock.CurrentPrice, stock.LastPrice)
	if err != nil {
		return fmt.Errorf("failed to upsert stock %q: %w", stock.Symbol, err)
	}
	return nil
}

func (r *StockRepository) DeleteStock(ctx context.Context, symbol string) error {
	_, err := r.db.Exec(ctx, sqlDeleteStock, symbol)
	if err != nil {
		return fmt.Errorf("failed to delete stock %q: %w", symbol, err)
	}
	return nil
}
