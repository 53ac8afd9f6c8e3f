package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcatalasan0/491-Project/internal/stocks/domain"
	"github.com/rcatalasan0/491-Project/internal/stocks/repository/postgres"
)

func newMockRepo(t *testing.T) (*postgres.PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return postgres.NewPostgresRepository(mock), mock
}

func TestList(t *testing.T) {
	t.Run("returns stocks ordered by symbol", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := pgxmock.NewRows([]string{"symbol", "name"}).
			AddRow("AAPL", "Apple Inc.").
			AddRow("MSFT", "Microsoft Corporation")
		mock.ExpectQuery("SELECT symbol, name FROM stocks").WillReturnRows(rows)

		stocks, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.Stock{
			{Symbol: "AAPL", Name: "Apple Inc."},
			{Symbol: "MSFT", Name: "Microsoft Corporation"},
		}, stocks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT symbol, name FROM stocks").
			WillReturnRows(pgxmock.NewRows([]string{"symbol", "name"}))

		stocks, err := repo.List(context.Background())
		require.NoError(t, err)
		require.NotNil(t, stocks)
		assert.Len(t, stocks, 0)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT symbol, name FROM stocks").
			WillReturnError(errors.New("connection closed"))

		_, err := repo.List(context.Background())
		assert.Error(t, err)
	})
}

func TestRecentCloses(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	t.Run("reverses newest-first rows to oldest-first", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := pgxmock.NewRows([]string{"price_date", "close_price"}).
			AddRow(day(2), 104.0).
			AddRow(day(1), 102.0).
			AddRow(day(0), 100.0)
		mock.ExpectQuery("SELECT price_date, close_price").
			WithArgs("AAPL", 90).
			WillReturnRows(rows)

		points, err := repo.RecentCloses(context.Background(), "AAPL", 90)
		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.Equal(t, domain.PricePoint{Date: day(0), Close: 100.0}, points[0])
		assert.Equal(t, domain.PricePoint{Date: day(2), Close: 104.0}, points[2])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown symbol returns no rows", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT price_date, close_price").
			WithArgs("ZZZZ", 90).
			WillReturnRows(pgxmock.NewRows([]string{"price_date", "close_price"}))

		points, err := repo.RecentCloses(context.Background(), "ZZZZ", 90)
		require.NoError(t, err)
		assert.Empty(t, points)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT price_date, close_price").
			WithArgs("AAPL", 90).
			WillReturnError(errors.New("connection closed"))

		_, err := repo.RecentCloses(context.Background(), "AAPL", 90)
		assert.Error(t, err)
	})
}
