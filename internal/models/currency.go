package models

// Supported fiat currency codes
const (
	NGN = "NGN"
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	KES = "KES"
	ZAR = "ZAR"
)

// Option is a select box entry.
// swagger:model Option
type Option struct {
	Value string `json:"value" example:"NGN"`
	Label string `json:"label" example:"NGN (Nigeria Naira)"`
}

// FiatOptions lists the fiat currencies offered by the form, in display order.
var FiatOptions = []Option{
	{Value: NGN, Label: "NGN (Nigeria Naira)"},
	{Value: USD, Label: "USD (US Dollar)"},
	{Value: EUR, Label: "EUR (Euro)"},
	{Value: GBP, Label: "GBP (British Pound)"},
	{Value: KES, Label: "KES (Kenya Shilling)"},
	{Value: ZAR, Label: "ZAR (South African Rand)"},
}

// Form defaults
var (
	DefaultCryptoOption = Option{Value: "BTC", Label: "Bitcoin (BTC)"}
	DefaultFiatOption   = FiatOptions[0]
)
