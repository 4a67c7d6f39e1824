package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

func TestSanityCoinsFacade_FetchCoins(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCoins []models.Coin
		wantErr   error
		anyErr    bool
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{"query":"*[_type == \"cryptocurrency\"]","ms":3,"result":[
				{"_id":"a1","name":"Bitcoin","symbol":"BTC","price_usd":60000},
				{"_id":"b2","name":"Ethereum","symbol":"ETH","price_usd":3500.5}]}`,
			wantCoins: []models.Coin{
				{ID: "a1", Name: "Bitcoin", Symbol: "BTC", PriceUSD: 60000},
				{ID: "b2", Name: "Ethereum", Symbol: "ETH", PriceUSD: 3500.5},
			},
		},
		{
			name:      "empty result",
			status:    http.StatusOK,
			body:      `{"query":"","ms":1,"result":null}`,
			wantCoins: []models.Coin{},
		},
		{
			name:    "upstream error status",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"description":"unauthorized"}}`,
			wantErr: ErrUpstreamStatus,
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `{"result":[`,
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.Query().Get("query")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			facade := NewSanityCoinsFacade(SanityConfig{ProjectID: "proj", BaseURL: srv.URL}, srv.Client())
			coins, err := facade.FetchCoins(context.Background())

			assert.Equal(t, "/v2024-03-11/data/query/production", gotPath)
			assert.Equal(t, CoinsQuery, gotQuery)

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, coins)
			case tt.anyErr:
				require.Error(t, err)
				assert.Nil(t, coins)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantCoins, coins)
			}
		})
	}
}

func TestSanityCoinsFacade_NotConfigured(t *testing.T) {
	facade := NewSanityCoinsFacade(SanityConfig{}, nil)

	coins, err := facade.FetchCoins(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, coins)
}

func TestSanityCoinsFacade_QueryURL(t *testing.T) {
	api := NewSanityCoinsFacade(SanityConfig{ProjectID: "abc123"}, nil)
	assert.Equal(t,
		"https://abc123.api.sanity.io/v2024-03-11/data/query/production?query=%2A%5B_type+%3D%3D+%22cryptocurrency%22%5D",
		api.queryURL(CoinsQuery))

	cdn := NewSanityCoinsFacade(SanityConfig{ProjectID: "abc123", Dataset: "staging", APIVersion: "2023-01-01", UseCDN: true}, nil)
	assert.Contains(t, cdn.queryURL(CoinsQuery), "https://abc123.apicdn.sanity.io/v2023-01-01/data/query/staging?")
}

func TestSanityCoinsFacade_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	facade := NewSanityCoinsFacade(SanityConfig{BaseURL: srv.URL, Timeout: 20 * time.Millisecond}, nil)

	_, err := facade.FetchCoins(context.Background())
	assert.Error(t, err)
}
