package lottery

// Single-number lottery
const (
	TicketPrice   = 100
	PickMin       = 1
	PickMax       = 1000
	LosingFeed    = 99 // added to the bonus pot by every losing ticket
)

// Scamball
const (
	ScamballTicketPrice = 2
	ScamballNumberCount = 5
	ScamballNumberMax   = 69
	ScamballSpecialMax  = 26
	ScamballFeed        = 2 // re-fed into the jackpot by every non-jackpot ticket
)

// Scamball prize tiers below the jackpot
const (
	PrizeFiveMatches        = 1_000_000
	PrizeFourWithSpecial    = 50_000
	PrizeFourMatches        = 100
	PrizeThreeWithSpecial   = 100
	PrizeThreeMatches       = 7
	PrizeTwoWithSpecial     = 7
	PrizeOneWithSpecial     = 4
	PrizeSpecialOnly        = 4
)
