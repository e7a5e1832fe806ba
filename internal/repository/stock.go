package repository

import (
	"context"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
)

// Stock defines the interface for market symbol persistence
type Stock interface {
	GetStock(ctx context.Context, symbol string) (*domain.Stock, error)
	GetAllStocks(ctx context.Context) ([]domain.Stock, error)
	UpsertStock(ctx context.Context, stock *domain.Stock) error
	DeleteStock(ctx context.Context, symbol string) error
}
