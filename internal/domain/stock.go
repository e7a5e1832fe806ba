package domain

// Stock is one tradable symbol with its current and previous price.
type Stock struct {
	Symbol       string `json:"symbol"`
	CurrentPrice int    `json:"current_price"`
	LastPrice    int    `json:"last_price"`
}

// PercentChange returns the price movement since the last tick.
func (s Stock) PercentChange() float64 {
	if s.LastPrice == 0 {
		return 0
	}
	return float64(s.CurrentPrice-s.LastPrice) / float64(s.LastPrice) * 100
}
