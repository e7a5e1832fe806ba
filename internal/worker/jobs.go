package worker

import (
	"context"
	"fmt"

	"github.com/dmaas/DumpsterBot_Go/internal/metrics"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
	"github.com/dmaas/DumpsterBot_Go/internal/stocks"
)

// MarketTickJob advances the stock market so prices keep moving during
// quiet periods with no chatter.
type MarketTickJob struct {
	Stocks stocks.Service
}

func (j *MarketTickJob) Process(ctx context.Context) error {
	if err := j.Stocks.Tick(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgMarketTickFailed, err)
	}
	return nil
}

// PotGaugesJob publishes the current lottery pots to the metrics
// gauges so dashboards track them between draws.
type PotGaugesJob struct {
	Lottery repository.Lottery
}

func (j *PotGaugesJob) Process(ctx context.Context) error {
	state, err := j.Lottery.GetLotteryState(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", LogMsgPotGaugesFailed, err)
	}
	metrics.LotteryBonus.Set(float64(state.LotteryBonus))
	metrics.ScamballJackpot.Set(float64(state.ScamballJackpot))
	return nil
}
