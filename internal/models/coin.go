package models

import "fmt"

// Coin is a supported cryptocurrency entry as stored in the CMS.
// swagger:model Coin
type Coin struct {
	ID       string  `json:"_id" example:"2f1c0e4a-bitcoin"` // CMS document identifier
	Name     string  `json:"name" example:"Bitcoin"`         // Display name
	Symbol   string  `json:"symbol" example:"BTC"`           // Ticker symbol
	PriceUSD float64 `json:"price_usd" example:"64250.5"`    // Reference price in USD
}

// Label returns the select option label, e.g. "Bitcoin (BTC)".
func (c Coin) Label() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Symbol)
}

// FindCoin looks up a coin by ticker symbol.
func FindCoin(coins []Coin, symbol string) (Coin, bool) {
	for _, c := range coins {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return Coin{}, false
}

// CoinsResponse represents a successful response with the supported coins
// swagger:model CoinsResponse
type CoinsResponse struct {
	// Supported coins
	Coins []Coin `json:"coins"`
}
