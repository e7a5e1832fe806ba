package emoji

import "github.com/dmaas/DumpsterBot_Go/internal/domain"

// RaccoonCharacter is the hidden companion pet awarded only by the
// dumpster's rare branch; it can never be sold.
const RaccoonCharacter = "🦝"

// Catalog is the fixed, ordered emoji list. Order matters: the
// dumpster's weighted selection walks it in this order, so it must be
// stable across calls.
type Catalog []domain.Emoji

// DefaultCatalog returns the store's emoji list.
func DefaultCatalog() Catalog {
	return Catalog{
		{Character: "🫓", Alias: "flatbread", Price: 10},
		{Character: "🗑️", Alias: "trash", Price: 100},
		{Character: "🧅", Alias: "onion", Price: 200},
		{Character: "🍳", Alias: "egg", Price: 399},
		{Character: "🍩", Alias: "donut", Price: 1000},
		{Character: "🍔", Alias: "burger", Price: 2000},
		{Character: "🍕", Alias: "pizza", Price: 2000},
		{Character: "🍨", Alias: "icecream", Price: 2000},
		{Character: "🍟", Alias: "fries", Price: 2000},
		{Character: "🍌", Alias: "banana", Price: 5000},
		{Character: "🪃", Alias: "boomerang", Price: 5000},
		{Character: "🙈", Alias: "seenoevil", Price: 5000},
		{Character: "🙉", Alias: "hearnoevil", Price: 5000},
		{Character: "🙊", Alias: "speaknoevil", Price: 5000},
		{Character: "🦍", Alias: "gorilla", Price: 10000},
		{Character: "🐸", Alias: "frog", Price: 10000},
		{Character: "🦘", Alias: "kangaroo", Price: 10000},
		{Character: "🐶", Alias: "dog", Price: 20000},
		{Character: "🐱", Alias: "cat", Price: 20000},
		{Character: "🦧", Alias: "orangutan", Price: 20000},
		{Character: "🐊", Alias: "crocodile", Price: 20000},
		{Character: "💰", Alias: "moneybag", Price: 50000},
		{Character: "💎", Alias: "diamond", Price: 100000},
		{Character: "🗿", Alias: "moai", Price: 200000},
		{Character: "🏎️", Alias: "car", Price: 500000},
		{Character: "🚁", Alias: "helicopter", Price: 1000000},
		{Character: "🪂", Alias: "parachute", Price: 1000000},
		{Character: "👑", Alias: "crown", Price: 10000000},
		{Character: "🚀", Alias: "rocket", Price: 100000000},
		{Character: "🛸", Alias: "ufo", Price: 200000000},
		{Character: "💦", Alias: "sweat", Price: 500000000},
		{Character: RaccoonCharacter, Alias: "raccoon", Price: 0, IsHidden: true},
		{Character: "🎅", Alias: "santa", Price: 0, IsHidden: true},
	}
}

// Find looks up an emoji by character or alias. Returns nil if the
// input names no catalog entry.
func (c Catalog) Find(input string) *domain.Emoji {
	for i := range c {
		if c[i].Character == input || c[i].Alias == input {
			return &c[i]
		}
	}
	return nil
}

// Purchasable returns the non-hidden, positive-price entries in
// catalog order.
func (c Catalog) Purchasable() []domain.Emoji {
	var out []domain.Emoji
	for _, e := range c {
		if !e.IsHidden && e.Price > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Visible returns the non-hidden entries in catalog order.
func (c Catalog) Visible() []domain.Emoji {
	var out []domain.Emoji
	for _, e := range c {
		if !e.IsHidden {
			out = append(out, e)
		}
	}
	return out
}
