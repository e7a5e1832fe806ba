package blackjack

// Betting limits
const (
	MinBet = 1
)

// DealerStandValue is the hand value at which the dealer stops drawing.
const DealerStandValue = 17

// NaturalPayoutFactor pays naturals at 3:2 (floored).
const NaturalPayoutFactor = 1.5

// Message formats. The hand prompt trails every in-progress report.
const (
	actionPrompt = "Type !hit to draw another card, !double to double down (if you can afford it), or !stand to stick with your cards."

	msgAlreadyPlaying = "%s, you are already playing blackjack! Your hand: %d (%s) Dealer shows: %d (%s). " + actionPrompt
	msgDealt          = "%s, dealing cards! Your hand: %d (%s), Dealer shows: %d (%s). " + actionPrompt
	msgNaturalPush    = "%s, both you and dealer have Blackjack! Push. Your hand: %s, Dealer's hand: %s"
	msgNaturalWin     = "%s got Blackjack! You win! Your hand: %s, Dealer's hand: %s"
	msgBust           = "%s busts! Your hand value is %d (%s)."
	msgHit            = "%s, your new hand: %d (%s)"
	msgDealerBust     = "Dealer busts! %s wins! Your hand value: %d (%s), Dealer final hand: %d (%s)"
	msgStandWin       = "%s wins! Your hand value: %d (%s) Dealer final hand: %d (%s)"
	msgStandLose      = "%s loses! Your hand value: %d (%s) Dealer final hand: %d (%s)"
	msgStandPush      = "%s, it's a tie! Your hand value: %d (%s) Dealer final hand: %d (%s)"
)
