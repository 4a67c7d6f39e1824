package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sbilibin2017/gw-coin-purchase/internal/logger"
	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

// DefaultOpenExchangeRatesURL is the latest-rates endpoint.
const DefaultOpenExchangeRatesURL = "https://openexchangerates.org/api/latest.json"

// OpenExchangeRatesFacade fetches the USD based rate table.
type OpenExchangeRatesFacade struct {
	appID  string
	apiURL string
	client *http.Client
}

// NewOpenExchangeRatesFacade creates a new facade. Empty apiURL selects the public endpoint.
func NewOpenExchangeRatesFacade(appID, apiURL string, timeout time.Duration, client *http.Client) *OpenExchangeRatesFacade {
	if apiURL == "" {
		apiURL = DefaultOpenExchangeRatesURL
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &OpenExchangeRatesFacade{
		appID:  appID,
		apiURL: apiURL,
		client: client,
	}
}

// FetchRates returns the latest currency code to USD multiplier table.
func (f *OpenExchangeRatesFacade) FetchRates(ctx context.Context) (models.Rates, error) {
	if f.appID == "" {
		return nil, fmt.Errorf("openexchangerates: %w", ErrNotConfigured)
	}

	u, err := url.Parse(f.apiURL)
	if err != nil {
		return nil, fmt.Errorf("openexchangerates: parse url: %w", err)
	}
	q := u.Query()
	q.Set("app_id", f.appID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("openexchangerates: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to fetch currency rates", "error", err)
		return nil, fmt.Errorf("openexchangerates: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openexchangerates: read body: %w", err)
	}

	var payload models.LatestRatesPayload
	decodeErr := json.Unmarshal(body, &payload)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.FromContext(ctx).Errorw("openexchangerates returned non-2xx status",
			"status", resp.StatusCode, "message", payload.Message, "description", payload.Description)
		return nil, fmt.Errorf("openexchangerates: %w: %d %s", ErrUpstreamStatus, resp.StatusCode, payload.Message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("openexchangerates: decode response: %w", decodeErr)
	}
	if payload.Error {
		return nil, fmt.Errorf("openexchangerates: %s: %s", payload.Message, payload.Description)
	}
	if payload.Rates == nil {
		return nil, fmt.Errorf("openexchangerates: response has no rates")
	}

	logger.FromContext(ctx).Debugw("currency rates fetched",
		"base", payload.Base, "timestamp", payload.Timestamp, "count", len(payload.Rates))
	return payload.Rates, nil
}
