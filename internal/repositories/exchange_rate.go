package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-coin-purchase/internal/logger"
	"github.com/sbilibin2017/gw-coin-purchase/internal/models"
)

// Cache keys
const (
	ratesKey = "exchange_rates:latest"
	coinsKey = "coins:latest"
)

// ErrCacheMiss is returned when a snapshot is not cached or has expired.
var ErrCacheMiss = errors.New("snapshot not found in cache")

// SnapshotCacheRepository caches the rate table and coin list in Redis.
type SnapshotCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached snapshots
}

// NewSnapshotCacheRepository creates a new repository instance with the given TTL.
func NewSnapshotCacheRepository(client *redis.Client, expiration time.Duration) *SnapshotCacheRepository {
	return &SnapshotCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRates returns the cached rate table.
func (r *SnapshotCacheRepository) GetRates(ctx context.Context) (models.Rates, error) {
	var rates models.Rates
	if err := r.get(ctx, ratesKey, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// SetRates caches the rate table.
func (r *SnapshotCacheRepository) SetRates(ctx context.Context, rates models.Rates) error {
	return r.set(ctx, ratesKey, rates)
}

// GetCoins returns the cached coin list.
func (r *SnapshotCacheRepository) GetCoins(ctx context.Context) ([]models.Coin, error) {
	var coins []models.Coin
	if err := r.get(ctx, coinsKey, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// SetCoins caches the coin list.
func (r *SnapshotCacheRepository) SetCoins(ctx context.Context, coins []models.Coin) error {
	return r.set(ctx, coinsKey, coins)
}

func (r *SnapshotCacheRepository) get(ctx context.Context, key string, dst any) error {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.FromContext(ctx).Debugw("cache miss", "key", key)
			return fmt.Errorf("%w: %s", ErrCacheMiss, key)
		}
		logger.FromContext(ctx).Warnw("cache read failed", "key", key, "error", err)
		return err
	}

	if err := json.Unmarshal(val, dst); err != nil {
		logger.FromContext(ctx).Warnw("cache entry is corrupt", "key", key, "error", err)
		return fmt.Errorf("decode cached %s: %w", key, err)
	}

	logger.FromContext(ctx).Debugw("cache hit", "key", key)
	return nil
}

func (r *SnapshotCacheRepository) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.FromContext(ctx).Debugw("cache write",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)
	return err
}
