package domain

// Card is a single playing card, stored as rank+suit (e.g. "A♠", "10♦").
// The suit is cosmetic; only the rank carries value.
type Card string

// Rank returns the card's rank with the suit stripped.
func (c Card) Rank() string {
	r := []rune(c)
	if len(r) < 2 {
		return string(c)
	}
	return string(r[:len(r)-1])
}

// IsAce reports whether the card is an ace.
func (c Card) IsAce() bool {
	return c.Rank() == "A"
}

// BaseValue returns the card's value counting aces as 0.
// Face cards count 10; the evaluator resolves aces separately.
func (c Card) BaseValue() int {
	switch r := c.Rank(); r {
	case "A":
		return 0
	case "K", "Q", "J", "10":
		return 10
	case "9":
		return 9
	case "8":
		return 8
	case "7":
		return 7
	case "6":
		return 6
	case "5":
		return 5
	case "4":
		return 4
	case "3":
		return 3
	case "2":
		return 2
	default:
		return 0
	}
}
