package repository

import (
	"context"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
)

// Lottery defines the interface for the singleton pot record.
// GetLotteryState creates the record with default pots on first use.
type Lottery interface {
	GetLotteryState(ctx context.Context) (*domain.LotteryState, error)
	UpdateLotteryState(ctx context.Context, state *domain.LotteryState) error
}
