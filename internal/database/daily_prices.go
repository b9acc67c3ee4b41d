package database

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/finboard/dashboard-service/internal/models"
)

// UpsertDailyPrices stores a batch of daily price rows for one symbol. Each
// row is upserted independently and concurrently, keyed by (symbol, date):
// an existing row for the same key has its low, high, close and volume
// replaced in place (last write wins).
//
// There is no cross-row atomicity. If any single upsert fails the whole
// call reports failure, but rows already upserted by the same call remain
// committed. Returns the number of rows submitted.
func (db *DB) UpsertDailyPrices(symbol string, prices []models.NewDailyPrice) (int, error) {
	sym, err := models.NormalizeSymbol(symbol)
	if err != nil {
		return 0, err
	}

	if len(prices) == 0 {
		return 0, &models.ValidationError{Field: "prices", Reason: "must not be empty"}
	}

	// Reject the whole batch before any write touches the table.
	for i := range prices {
		if err := prices[i].Validate(); err != nil {
			return 0, err
		}
	}

	if err := db.EnsureTable(StocksTable); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO stocks (symbol, date, low, high, close, volume)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (symbol, date) DO UPDATE SET
			low = EXCLUDED.low,
			high = EXCLUDED.high,
			close = EXCLUDED.close,
			volume = EXCLUDED.volume
	`

	var g errgroup.Group
	for _, p := range prices {
		g.Go(func() error {
			_, err := db.conn.Exec(query, sym, p.Date, p.Low, p.High, p.Close, p.Volume)
			if err != nil {
				return fmt.Errorf("failed to store stock prices for %s on %s: %w", sym, p.Date, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return len(prices), nil
}

// GetDailyPrices retrieves stored rows for a symbol ordered by date
// descending. The limit is clamped to [1, 365].
func (db *DB) GetDailyPrices(symbol string, limit int) ([]*models.DailyPrice, error) {
	return db.getDailyPrices(symbol, models.ClampPriceWindow(limit))
}

// GetDailyPricesWithLookback retrieves up to limit+1 rows ordered by date
// descending: the requested window plus one older row used solely to
// compute the change for the oldest returned row. The limit is clamped
// before the lookback row is added.
func (db *DB) GetDailyPricesWithLookback(symbol string, limit int) ([]*models.DailyPrice, error) {
	return db.getDailyPrices(symbol, models.ClampPriceWindow(limit)+1)
}

func (db *DB) getDailyPrices(symbol string, limit int) ([]*models.DailyPrice, error) {
	sym, err := models.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureTable(StocksTable); err != nil {
		return nil, err
	}

	query := `
		SELECT id, symbol, date, low, high, close, volume, created_at
		FROM stocks
		WHERE symbol = $1
		ORDER BY date DESC
		LIMIT $2
	`
	rows, err := db.conn.Query(query, sym, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock prices for %s: %w", sym, err)
	}
	defer rows.Close()

	var prices []*models.DailyPrice
	for rows.Next() {
		var p models.DailyPrice
		if err := rows.Scan(
			&p.ID, &p.Symbol, &p.Date, &p.Low, &p.High, &p.Close, &p.Volume, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock price: %w", err)
		}
		prices = append(prices, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock prices: %w", err)
	}

	return prices, nil
}
