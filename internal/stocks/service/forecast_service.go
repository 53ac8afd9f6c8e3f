package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/rcatalasan0/491-Project/config"
	autherror "github.com/rcatalasan0/491-Project/internal/errors"
	"github.com/rcatalasan0/491-Project/internal/stocks/domain"
)

const DefaultForecastDays = 7

var tickerPattern = regexp.MustCompile(`^[A-Z]{1,10}$`)

// ForecastService produces simple linear-extrapolation forecasts from the
// stored price history.
type ForecastService struct {
	repo  domain.StockRepository
	cache domain.ForecastCache
	cfg   *config.Config
}

func NewForecastService(repo domain.StockRepository, cache domain.ForecastCache, cfg *config.Config) *ForecastService {
	return &ForecastService{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

func (s *ForecastService) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	stocks, err := s.repo.List(ctx)
	if err != nil {
		return nil, autherror.StoreUnavailable(err)
	}
	return stocks, nil
}

// Predict returns a days-long forecast for ticker. days <= 0 selects the
// default horizon.
func (s *ForecastService) Predict(ctx context.Context, ticker string, days int) (*domain.Forecast, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, autherror.Validation("Missing ticker")
	}
	if !tickerPattern.MatchString(ticker) {
		return nil, autherror.Validation("invalid ticker symbol")
	}

	if days <= 0 {
		days = DefaultForecastDays
	}
	if days > s.cfg.PredictMaxDays {
		return nil, autherror.Validation(fmt.Sprintf("days must be between 1 and %d", s.cfg.PredictMaxDays))
	}

	if cached, err := s.cache.Get(ctx, ticker, days); err != nil {
		log.Printf("warn: forecast cache read for %s failed: %v", ticker, err)
	} else if cached != nil {
		return cached, nil
	}

	closes, err := s.repo.RecentCloses(ctx, ticker, s.cfg.ForecastHistoryDays)
	if err != nil {
		return nil, autherror.StoreUnavailable(err)
	}
	if len(closes) == 0 {
		return nil, autherror.ErrTickerNotFound
	}

	slope := fitSlope(closes)
	last := closes[len(closes)-1].Close

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	predictions := make([]domain.Prediction, 0, days)
	for i := 0; i < days; i++ {
		predictions = append(predictions, domain.Prediction{
			Date:  today.AddDate(0, 0, i+1).Format("2006-01-02"),
			Price: round2(last + slope*float64(i+1)),
		})
	}

	forecast := &domain.Forecast{
		Ticker:      ticker,
		LastUpdated: now.Format(time.RFC3339),
		Predictions: predictions,
	}

	ttl := time.Duration(s.cfg.ForecastCacheTTLMin) * time.Minute
	if err := s.cache.Set(ctx, forecast, ttl); err != nil {
		log.Printf("warn: forecast cache write for %s failed: %v", ticker, err)
	}

	return forecast, nil
}

// fitSlope is the least-squares slope of close price over day index,
// i.e. the average daily price change across the history.
func fitSlope(points []domain.PricePoint) float64 {
	n := float64(len(points))
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, p := range points {
		x := float64(i)
		sumX += x
		sumY += p.Close
		sumXY += x * p.Close
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
