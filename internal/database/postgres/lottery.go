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

// LotteryRepository implements repository.Lottery. The state is a
// singleton row created lazily with the seed jackpot.
type LotteryRepository struct {
	db *pgxpool.Pool
}

// NewLotteryRepository creates a lottery repository on the given pool.
func NewLotteryRepository(db *pgxpool.Pool) repository.Lottery {
	return &LotteryRepository{db: db}
}

func (r *LotteryRepository) GetLotteryState(ctx context.Context) (*domain.LotteryState, error) {
	state, err := r.selectState(ctx)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get lottery state: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlInsertLotteryState, domain.ScamballJackpotSeed); err != nil {
		return nil, fmt.Errorf("failed to create lottery state: %w", err)
	}
	state, err = r.selectState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lottery state after create: %w", err)
	}
	return state, nil
}

func (r *LotteryRepository) UpdateLotteryState(ctx context.Context, state *domain.LotteryState) error {
	_, err := r.db.Exec(ctx, sqlUpdateLotteryState, state.LotteryBonus, state.ScamballJackpot)
	if err != nil {
		return fmt.Errorf("failed to update lottery state: %w", err)
	}
	return nil
}

func (r *LotteryRepository) selectState(ctx context.Context) (*domain.LotteryState, error) {
	var state domain.LotteryState
	err := r.db.QueryRow(ctx, sqlSelectLotteryState).Scan(&state.ID, &state.LotteryBonus, &state.ScamballJackpot)
	if err != nil {
		return nil, err
	}
	return &state, nil
}
