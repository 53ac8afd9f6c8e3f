package domain

//go:generate mockgen -destination=../../mocks/mock_stock_repository.go -package=mocks github.com/rcatalasan0/491-Project/internal/stocks/domain StockRepository
//go:generate mockgen -destination=../../mocks/mock_forecast_cache.go -package=mocks github.com/rcatalasan0/491-Project/internal/stocks/domain ForecastCache

import (
	"context"
	"time"
)

type StockRepository interface {
	List(ctx context.Context) ([]Stock, error)
	// RecentCloses returns up to limit of the most recent closes for
	// symbol, ordered oldest first. An unknown symbol yields an empty
	// slice, not an error.
	RecentCloses(ctx context.Context, symbol string, limit int) ([]PricePoint, error)
}

// ForecastCache is a best-effort response cache. Get returns (nil, nil)
// on a miss.
type ForecastCache interface {
	Get(ctx context.Context, ticker string, days int) (*Forecast, error)
	Set(ctx context.Context, forecast *Forecast, ttl time.Duration) error
}
