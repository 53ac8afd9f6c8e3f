// Package cache holds the forecast response cache. Forecasts are
// deterministic over the stored price history, so cached entries only need
// to survive until fresh prices land; reads and writes are both
// best-effort.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rcatalasan0/491-Project/internal/stocks/domain"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func key(ticker string, days int) string {
	return fmt.Sprintf("forecast:%s:%d", ticker, days)
}

func (c *RedisCache) Get(ctx context.Context, ticker string, days int) (*domain.Forecast, error) {
	val, err := c.client.Get(ctx, key(ticker, days)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast cache: %w", err)
	}

	var forecast domain.Forecast
	if err := json.Unmarshal([]byte(val), &forecast); err != nil {
		return nil, fmt.Errorf("corrupt forecast cache entry for %s: %w", ticker, err)
	}

	return &forecast, nil
}

func (c *RedisCache) Set(ctx context.Context, forecast *domain.Forecast, ttl time.Duration) error {
	payload, err := json.Marshal(forecast)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key(forecast.Ticker, len(forecast.Predictions)), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write forecast cache: %w", err)
	}

	return nil
}

// NopCache is wired when no Redis address is configured.
type NopCache struct{}

func (NopCache) Get(ctx context.Context, ticker string, days int) (*domain.Forecast, error) {
	return nil, nil
}

func (NopCache) Set(ctx context.Context, forecast *domain.Forecast, ttl time.Duration) error {
	return nil
}
