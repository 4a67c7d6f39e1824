package models

// Form fields that can be edited by the user.
const (
	FieldCryptoCurrency = "crypto_currency"
	FieldCryptoAmount   = "crypto_amount"
	FieldFiatCurrency   = "fiat_currency"
	FieldFiatAmount     = "fiat_amount"
	FieldWalletAddress  = "wallet_address"
)

// PurchaseForm holds the state of the purchase form for one page session.
// swagger:model PurchaseForm
type PurchaseForm struct {
	// Selected coin symbol
	// example: BTC
	CryptoCurrency string `json:"crypto_currency"`

	// Selected fiat currency code
	// example: NGN
	FiatCurrency string `json:"fiat_currency"`

	// Amount of crypto to buy
	// example: 0.5
	CryptoAmount *float64 `json:"crypto_amount,omitempty" validate:"required"`

	// Amount of fiat to pay
	// example: 48000000
	FiatAmount *float64 `json:"fiat_amount,omitempty" validate:"required"`

	// Address that receives the coins
	// example: bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh
	WalletAddress string `json:"wallet_address" validate:"required"`
}

// DefaultPurchaseForm returns the form state shown on first load.
func DefaultPurchaseForm() PurchaseForm {
	return PurchaseForm{
		CryptoCurrency: DefaultCryptoOption.Value,
		FiatCurrency:   DefaultFiatOption.Value,
	}
}

// FieldErrors maps a form field to its inline error message.
// swagger:model FieldErrors
type FieldErrors map[string]string

// ConvertRequest represents the JSON body for recomputing the form
// swagger:model ConvertRequest
type ConvertRequest struct {
	// Field the user changed
	// required: true
	// example: crypto_amount
	Edited string `json:"edited"`

	// Current form state
	Form PurchaseForm `json:"form"`
}

// ConvertResponse represents the recomputed form
// swagger:model ConvertResponse
type ConvertResponse struct {
	Form PurchaseForm `json:"form"`
}

// PurchaseResponse represents an accepted submission
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	Notification Notification `json:"notification"`
}

// PurchaseErrorResponse represents a rejected submission
// swagger:model PurchaseErrorResponse
type PurchaseErrorResponse struct {
	// Inline field errors
	Errors FieldErrors `json:"errors,omitempty"`

	// Error notification, e.g. when no coin is selected
	Notification *Notification `json:"notification,omitempty"`
}
