package dumpster

import "time"

// Gate timings
const (
	Cooldown    = 15 * time.Minute
	BanDuration = 30 * 24 * time.Hour
)

// RaccoonChance is checked before everything else on the raw roll.
const RaccoonChance = 0.0005

// TotalEmojiChance is the combined probability mass given to the
// price-weighted emoji buckets.
const TotalEmojiChance = 0.20

// Post-emoji cascade band widths. Each band consumes a contiguous,
// disjoint slice of [0,1) after the emoji mass; whatever remains pays
// nothing.
const (
	ScamballTicketChance = 1.0 / 11_000_000
	LotteryTicketChance  = 1.0 / 250
	LargePointsChance    = 0.015
	PoliceChance         = 0.005
	JunkBandChance       = 0.05 // three junk bands of this width each
	SmallPointsChance    = 0.03
	TinyPointsChance     = 0.40
)

// Point awards
const (
	LargePointsAward = 1000
	SmallPointsAward = 100
	TinyPointsAward  = 10
)

// Police confiscation takes a uniform percentage in this range.
const (
	PoliceMinPercent = 10
	PoliceMaxPercent = 95
)
