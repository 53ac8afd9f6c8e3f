package postgres

import (
	"context"
	"fmt"

	"github.com/rcatalasan0/491-Project/db"
	"github.com/rcatalasan0/491-Project/internal/stocks/domain"
)

type PostgresRepository struct {
	db db.Querier
}

func NewPostgresRepository(db db.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Stock, error) {
	rows, err := r.db.Query(ctx, `
		SELECT symbol, name FROM stocks ORDER BY symbol
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}
	defer rows.Close()

	// Non-nil even when empty so the catalog serializes as [].
	stocks := []domain.Stock{}
	for rows.Next() {
		var s domain.Stock
		if err := rows.Scan(&s.Symbol, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		stocks = append(stocks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	return stocks, nil
}

func (r *PostgresRepository) RecentCloses(ctx context.Context, symbol string, limit int) ([]domain.PricePoint, error) {
	rows, err := r.db.Query(ctx, `
		SELECT price_date, close_price
		FROM stock_prices
		WHERE symbol = $1
		ORDER BY price_date DESC
		LIMIT $2
	`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query closes for %s: %w", symbol, err)
	}
	defer rows.Close()

	var points []domain.PricePoint
	for rows.Next() {
		var p domain.PricePoint
		if err := rows.Scan(&p.Date, &p.Close); err != nil {
			return nil, fmt.Errorf("failed to scan close for %s: %w", symbol, err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query closes for %s: %w", symbol, err)
	}

	// Newest-first from the query; callers want oldest first.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	return points, nil
}
