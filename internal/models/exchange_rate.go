package models

// LatestRatesPayload is the body returned by the openexchangerates latest.json endpoint.
type LatestRatesPayload struct {
	Disclaimer string `json:"disclaimer,omitempty"`
	License    string `json:"license,omitempty"`
	Timestamp  int64  `json:"timestamp"`
	Base       string `json:"base"`
	Rates      Rates  `json:"rates"`

	// Populated on failure only.
	Error       bool   `json:"error,omitempty"`
	Status      int    `json:"status,omitempty"`
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`
}

// CoinQueryPayload is the body returned by the Sanity query endpoint for the coin list.
type CoinQueryPayload struct {
	Query  string `json:"query"`
	Result []Coin `json:"result"`
	Ms     int    `json:"ms"`
}
