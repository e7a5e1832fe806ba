package duel

// Coin flip bounds; rolls above FlipWinThreshold go to the initiator.
const (
	FlipRollMax      = 100
	FlipWinThreshold = 50
)
