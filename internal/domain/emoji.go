package domain

// Emoji is a collectible catalog entry. Price 0 marks a cosmetic that
// can neither be bought nor sold; IsHidden excludes it from the store
// listing and from the dumpster's ordinary-emoji pool.
type Emoji struct {
	Character string `json:"character"`
	Alias     string `json:"alias"`
	Price     int    `json:"price"`
	IsHidden  bool   `json:"is_hidden"`
}
