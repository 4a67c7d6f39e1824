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

// CoinsQuery selects every coin document in the dataset.
const CoinsQuery = `*[_type == "cryptocurrency"]`

// Sanity defaults
const (
	DefaultSanityDataset    = "production"
	DefaultSanityAPIVersion = "2024-03-11"
)

// SanityConfig describes how to reach the Sanity query API.
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	// BaseURL overrides the https://<project>.api.sanity.io host.
	BaseURL string
	Timeout time.Duration
}

// SanityCoinsFacade fetches the supported coin list from the Sanity CMS.
type SanityCoinsFacade struct {
	cfg    SanityConfig
	client *http.Client
}

// NewSanityCoinsFacade creates a new facade. A nil client gets a default one with cfg.Timeout.
func NewSanityCoinsFacade(cfg SanityConfig, client *http.Client) *SanityCoinsFacade {
	if cfg.Dataset == "" {
		cfg.Dataset = DefaultSanityDataset
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultSanityAPIVersion
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &SanityCoinsFacade{cfg: cfg, client: client}
}

// queryURL builds the GROQ query URL for the configured project and dataset.
func (f *SanityCoinsFacade) queryURL(query string) string {
	base := f.cfg.BaseURL
	if base == "" {
		host := "api.sanity.io"
		if f.cfg.UseCDN {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", f.cfg.ProjectID, host)
	}

	return fmt.Sprintf("%s/v%s/data/query/%s?%s",
		base, f.cfg.APIVersion, url.PathEscape(f.cfg.Dataset),
		url.Values{"query": {query}}.Encode(),
	)
}

// FetchCoins runs CoinsQuery and returns the coin documents.
func (f *SanityCoinsFacade) FetchCoins(ctx context.Context) ([]models.Coin, error) {
	if f.cfg.ProjectID == "" && f.cfg.BaseURL == "" {
		return nil, fmt.Errorf("sanity: %w", ErrNotConfigured)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.queryURL(CoinsQuery), nil)
	if err != nil {
		return nil, fmt.Errorf("sanity: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to fetch coins from sanity", "error", err)
		return nil, fmt.Errorf("sanity: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sanity: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.FromContext(ctx).Errorw("sanity returned non-2xx status",
			"status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("sanity: %w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var payload models.CoinQueryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("sanity: decode response: %w", err)
	}

	if payload.Result == nil {
		payload.Result = []models.Coin{}
	}

	logger.FromContext(ctx).Debugw("coins fetched", "count", len(payload.Result), "ms", payload.Ms)
	return payload.Result, nil
}
