package models

// Rates maps a currency code to its USD conversion multiplier.
// swagger:model Rates
type Rates map[string]float64

// RatesResponse represents a successful response with exchange rates
// swagger:model RatesResponse
type RatesResponse struct {
	// Exchange rates keyed by currency code
	Rates Rates `json:"rates"`
}

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Failed to retrieve exchange rates
	Error string `json:"error"`
}
