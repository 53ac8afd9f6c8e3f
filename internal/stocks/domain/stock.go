package domain

import "time"

type Stock struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// PricePoint is one stored daily close for a ticker.
type PricePoint struct {
	Date  time.Time
	Close float64
}

type Prediction struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Forecast is the client-facing prediction payload, also the unit stored
// in the cache.
type Forecast struct {
	Ticker      string       `json:"ticker"`
	LastUpdated string       `json:"last_updated"`
	Predictions []Prediction `json:"predictions"`
}
