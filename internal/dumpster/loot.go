package dumpster

import (
	"math"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
)

// emojiChance returns the raw (unnormalized) find weight for a priced
// emoji. The curve is 1/(log10(price+100))^4: cheaper finds are
// exponentially more common.
func emojiChance(price int) float64 {
	logScale := math.Log10(float64(price) + 100)
	return 1 / math.Pow(logScale, 4)
}

// weightedBucket is one emoji's slice of the find distribution.
type weightedBucket struct {
	emoji     domain.Emoji
	threshold float64 // inclusive upper bound of this bucket's slice
}

// emojiBuckets computes the normalized inverse-CDF thresholds for the
// candidates (non-hidden, positive price), walked in catalog order.
// The buckets together cover exactly TotalEmojiChance of [0,1).
func emojiBuckets(catalog []domain.Emoji) []weightedBucket {
	var candidates []domain.Emoji
	totalRaw := 0.0
	for _, e := range catalog {
		if e.IsHidden || e.Price <= 0 {
			continue
		}
		candidates = append(candidates, e)
		totalRaw += emojiChance(e.Price)
	}
	if totalRaw == 0 {
		return nil
	}

	buckets := make([]weightedBucket, 0, len(candidates))
	threshold := 0.0
	for _, e := range candidates {
		threshold += emojiChance(e.Price) / totalRaw * TotalEmojiChance
		buckets = append(buckets, weightedBucket{emoji: e, threshold: threshold})
	}
	return buckets
}
