package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
)

func hand(cards ...string) []domain.Card {
	out := make([]domain.Card, len(cards))
	for i, c := range cards {
		out[i] = domain.Card(c)
	}
	return out
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name string
		hand []domain.Card
		want int
	}{
		{"two faces", hand("K♠", "Q♥"), 20},
		{"natural", hand("A♠", "K♥"), 21},
		{"two aces and a nine", hand("A♠", "A♥", "9♦"), 21},
		{"ace demoted on bust risk", hand("A♠", "K♥", "5♦"), 16},
		{"three aces and a king", hand("A♠", "A♥", "A♦", "K♣"), 13},
		{"five and five and ace", hand("5♠", "5♥", "A♦"), 21},
		{"ten value cards", hand("10♠", "J♥", "3♦"), 23},
		{"empty hand", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(tt.hand))
		})
	}
}

func TestIsNatural(t *testing.T) {
	assert.True(t, IsNatural(hand("A♠", "K♥")))
	assert.True(t, IsNatural(hand("10♦", "A♣")))
	assert.False(t, IsNatural(hand("K♠", "Q♥")))
	assert.False(t, IsNatural(hand("A♠", "5♥", "5♦")))
	assert.False(t, IsNatural(hand("A♠")))
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	require.Equal(t, 52, deck.Size())

	seen := make(map[domain.Card]bool)
	src := random.NewSeededSource(1)
	for deck.Size() > 0 {
		c := deck.Draw(src)
		assert.False(t, seen[c], "card %s drawn twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestNewDeckExcluding(t *testing.T) {
	deck := NewDeckExcluding(hand("A♠", "K♥"), hand("Q♦"))
	require.Equal(t, 49, deck.Size())

	src := random.NewSeededSource(2)
	for deck.Size() > 0 {
		c := deck.Draw(src)
		assert.NotContains(t, []domain.Card{"A♠", "K♥", "Q♦"}, c)
	}
}

// Hand value is always within the bounds given by counting every ace
// low or high, and never undervalues a hand that could stand at 21.
func TestHandValueBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		deck := NewDeck()
		src := random.NewSeededSource(rapid.Uint64().Draw(t, "seed"))
		n := rapid.IntRange(0, 10).Draw(t, "cards")

		h := make([]domain.Card, 0, n)
		for i := 0; i < n; i++ {
			h = append(h, deck.Draw(src))
		}

		base, aces := 0, 0
		for _, c := range h {
			if c.IsAce() {
				aces++
			} else {
				base += c.BaseValue()
			}
		}

		v := HandValue(h)
		if v < base+aces || v > base+11*aces {
			t.Fatalf("value %d out of bounds for %v", v, h)
		}
		if base+aces <= 21 && v > 21 {
			t.Fatalf("busted hand %v valued %d despite safe low count", h, v)
		}
	})
}
