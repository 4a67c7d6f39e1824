//go:generate mockgen -source=page.go -destination=mock_page.go -package=services

package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-coin-purchase/internal/logger"
	"github.com/sbilibin2017/gw-coin-purchase/internal/metrics"
	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

// CoinsReader fetches the supported coins from the CMS.
type CoinsReader interface {
	FetchCoins(ctx context.Context) ([]models.Coin, error)
}

// RatesReader fetches the currency rate table from the exchange-rate API.
type RatesReader interface {
	FetchRates(ctx context.Context) (models.Rates, error)
}

// SnapshotCache caches upstream snapshots between page loads.
type SnapshotCache interface {
	GetRates(ctx context.Context) (models.Rates, error)
	SetRates(ctx context.Context, rates models.Rates) error
	GetCoins(ctx context.Context) ([]models.Coin, error)
	SetCoins(ctx context.Context, coins []models.Coin) error
}

// PageService loads the data the purchase page is rendered from.
type PageService struct {
	coins   CoinsReader
	rates   RatesReader
	cache   SnapshotCache // optional
	metrics *metrics.PurchaseMetrics
}

// NewPageService creates a new service instance. cache and m may be nil.
func NewPageService(
	coins CoinsReader,
	rates RatesReader,
	cache SnapshotCache,
	m *metrics.PurchaseMetrics,
) *PageService {
	return &PageService{
		coins:   coins,
		rates:   rates,
		cache:   cache,
		metrics: m,
	}
}

// LoadPage fetches coins and rates concurrently and builds the initial page.
// Failures are logged and leave the corresponding data empty; they are never returned.
func (s *PageService) LoadPage(ctx context.Context) *models.PageData {
	var (
		coins    []models.Coin
		rates    models.Rates
		coinsErr error
		ratesErr error
	)

	// Without a shared context, one failing fetch doesn't cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		coins, coinsErr = s.GetCoins(ctx)
		return coinsErr
	})
	g.Go(func() error {
		rates, ratesErr = s.GetRates(ctx)
		return ratesErr
	})
	_ = g.Wait()

	log := logger.FromContext(ctx)
	page := &models.PageData{
		Coins: []models.Coin{},
		Form:  models.DefaultPurchaseForm(),
	}

	if coinsErr != nil {
		log.Errorw("error fetching coins", "error", coinsErr)
	} else {
		page.Coins = coins
		page.CoinsLoaded = true
	}

	if ratesErr != nil {
		log.Errorw("error fetching currency rates", "error", ratesErr)
	} else {
		page.Rates = rates
		page.RatesLoaded = true
	}

	page.SelectCoin(page.Form.CryptoCurrency)
	return page
}

// GetCoins returns the coin list, from cache when available.
func (s *PageService) GetCoins(ctx context.Context) ([]models.Coin, error) {
	started := time.Now()

	if s.cache != nil {
		coins, err := s.cache.GetCoins(ctx)
		if err == nil {
			s.metrics.ObserveFetch(metrics.SourceCoins, metrics.ResultCacheHit, started)
			return coins, nil
		}
	}

	coins, err := s.coins.FetchCoins(ctx)
	if err != nil {
		s.metrics.ObserveFetch(metrics.SourceCoins, metrics.ResultError, started)
		return nil, err
	}
	s.metrics.ObserveFetch(metrics.SourceCoins, metrics.ResultOK, started)

	if s.cache != nil {
		if err := s.cache.SetCoins(ctx, coins); err != nil {
			logger.FromContext(ctx).Warnw("failed to cache coins", "error", err)
		}
	}
	return coins, nil
}

// GetRates returns the rate table, from cache when available.
func (s *PageService) GetRates(ctx context.Context) (models.Rates, error) {
	started := time.Now()

	if s.cache != nil {
		rates, err := s.cache.GetRates(ctx)
		if err == nil {
			s.metrics.ObserveFetch(metrics.SourceRates, metrics.ResultCacheHit, started)
			return rates, nil
		}
	}

	rates, err := s.rates.FetchRates(ctx)
	if err != nil {
		s.metrics.ObserveFetch(metrics.SourceRates, metrics.ResultError, started)
		return nil, err
	}
	if len(rates) == 0 {
		s.metrics.ObserveFetch(metrics.SourceRates, metrics.ResultError, started)
		return nil, ErrEmptyRates
	}
	s.metrics.ObserveFetch(metrics.SourceRates, metrics.ResultOK, started)

	if s.cache != nil {
		if err := s.cache.SetRates(ctx, rates); err != nil {
			logger.FromContext(ctx).Warnw("failed to cache rates", "error", err)
		}
	}
	return rates, nil
}

// ErrEmptyRates is returned when the rate API answers with an empty table.
var ErrEmptyRates = errors.New("exchange rate table is empty")
