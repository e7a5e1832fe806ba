package domain

import "time"

// User represents a registered chatter and their economy state
type User struct {
	ID               string         `json:"id"`
	Username         string         `json:"username"`
	Points           int            `json:"points"`
	BlackjackBet     int            `json:"blackjack_bet"`
	BlackjackHand    []Card         `json:"blackjack_hand"`
	DealerHand       []Card         `json:"dealer_hand"`
	IsDueling        bool           `json:"is_dueling"`
	DuelInitiator    string         `json:"duel_initiator"`
	DuelOpponent     string         `json:"duel_opponent"`
	DuelBet          int            `json:"duel_bet"`
	OwnedStocks      []StockHolding `json:"owned_stocks"`
	EmojiCollection  []string       `json:"emoji_collection"`
	LastDumpsterDive *time.Time     `json:"last_dumpster_dive,omitempty"`
	DumpsterBanUntil *time.Time     `json:"dumpster_ban_until,omitempty"`
}

// InBlackjackRound reports whether the user has a blackjack round in
// progress. An empty hand is the persisted "not playing" state.
func (u *User) InBlackjackRound() bool {
	return len(u.BlackjackHand) > 0
}

// OwnsEmoji reports whether the character is in the user's collection.
func (u *User) OwnsEmoji(character string) bool {
	for _, c := range u.EmojiCollection {
		if c == character {
			return true
		}
	}
	return false
}

// RemoveEmoji removes one instance of the character from the collection.
// Returns false if the user does not own it.
func (u *User) RemoveEmoji(character string) bool {
	for i, c := range u.EmojiCollection {
		if c == character {
			u.EmojiCollection = append(u.EmojiCollection[:i], u.EmojiCollection[i+1:]...)
			return true
		}
	}
	return false
}

// StockHolding represents a position in the user's portfolio
type StockHolding struct {
	Symbol        string `json:"symbol"`
	Quantity      int    `json:"quantity"`
	PurchasePrice int    `json:"purchase_price"`
}
