package domain

// ScamballJackpotSeed is the jackpot's floor; the pot resets to it
// after a grand-prize win.
const ScamballJackpotSeed = 20_000_000

// LotteryBasePrize is the fixed part of the single-number lottery
// jackpot; the rolling bonus pot is added on top.
const LotteryBasePrize = 1_000_000

// LotteryState is the per-channel singleton holding the rolling pots.
type LotteryState struct {
	ID              int `json:"id"`
	LotteryBonus    int `json:"lottery_bonus"`
	ScamballJackpot int `json:"scamball_jackpot"`
}
