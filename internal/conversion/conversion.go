// Package conversion holds the arithmetic behind the purchase form:
// crypto amount to fiat amount and back, through the coin's USD price
// and the fiat currency's USD multiplier.
package conversion

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

// Decimal places kept on each side of the conversion.
const (
	FiatPlaces   int32 = 2
	CryptoPlaces int32 = 6
)

// DefaultRate is used when the rate table or the currency code is missing.
const DefaultRate = 1.0

// RateFor returns the USD multiplier for code.
// A nil table or an unknown code yields DefaultRate.
func RateFor(rates models.Rates, code string) float64 {
	if rates == nil {
		return DefaultRate
	}
	rate, ok := rates[code]
	if !ok || rate == 0 {
		return DefaultRate
	}
	return rate
}

// CryptoToFiat converts a crypto amount into fiat, rounded to FiatPlaces.
func CryptoToFiat(amount, priceUSD, rate float64) float64 {
	return Round(amount*priceUSD*rate, FiatPlaces)
}

// FiatToCrypto converts a fiat amount into crypto, rounded to CryptoPlaces.
func FiatToCrypto(amount, priceUSD, rate float64) float64 {
	return Round((amount/rate)/priceUSD, CryptoPlaces)
}

// Round rounds v half away from zero to the given number of decimal places.
// NaN and infinities are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// IsFinite reports whether v can be written back into the form.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
