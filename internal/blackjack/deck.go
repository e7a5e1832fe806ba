package blackjack

import (
	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
)

var ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
var suits = []string{"♠", "♣", "♥", "♦"}

// Deck is the set of cards not yet dealt in a round. There is no
// shared deck state: every operation rebuilds the remaining deck from
// the persisted hands, so draws within a round never repeat and rounds
// never interfere with each other.
type Deck struct {
	cards []domain.Card
}

// NewDeck returns a full 52-card deck.
func NewDeck() *Deck {
	cards := make([]domain.Card, 0, 52)
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, domain.Card(rank+suit))
		}
	}
	return &Deck{cards: cards}
}

// NewDeckExcluding returns a full deck minus the cards already held in
// the given hands.
func NewDeckExcluding(hands ...[]domain.Card) *Deck {
	held := make(map[domain.Card]bool)
	for _, hand := range hands {
		for _, c := range hand {
			held[c] = true
		}
	}

	deck := NewDeck()
	remaining := deck.cards[:0]
	for _, c := range deck.cards {
		if !held[c] {
			remaining = append(remaining, c)
		}
	}
	deck.cards = remaining
	return deck
}

// Size returns the number of cards left in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Draw removes and returns one uniformly random remaining card.
func (d *Deck) Draw(src random.Source) domain.Card {
	i := src.IntN(len(d.cards))
	card := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return card
}

// HandValue computes a hand's blackjack value. Non-ace ranks are
// summed first (faces count 10), then each ace adds 11 if that keeps
// the total at or under 21, otherwise 1. May exceed 21 (bust).
func HandValue(hand []domain.Card) int {
	value := 0
	aces := 0
	for _, c := range hand {
		if c.IsAce() {
			aces++
		} else {
			value += c.BaseValue()
		}
	}

	for i := 0; i < aces; i++ {
		if value+11 <= 21 {
			value += 11
		} else {
			value++
		}
	}
	return value
}

// IsNatural reports whether the hand is a two-card 21.
func IsNatural(hand []domain.Card) bool {
	return len(hand) == 2 && HandValue(hand) == 21
}
