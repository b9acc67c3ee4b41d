package history

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/dashboard-service/internal/models"
)

func row(date string, close float64, volume int64) *models.DailyPrice {
	d, _ := time.Parse(time.DateOnly, date)
	return &models.DailyPrice{
		Symbol: "AAPL",
		Date:   d,
		Close:  decimal.NewFromFloat(close),
		Volume: volume,
	}
}

func TestFromDailyPrices(t *testing.T) {
	t.Run("pairs each row with its chronological predecessor", func(t *testing.T) {
		// Newest to oldest closes: 100, 110, 99.
		rows := []*models.DailyPrice{
			row("2024-01-17", 100, 30),
			row("2024-01-16", 110, 20),
			row("2024-01-15", 99, 10),
		}

		points := FromDailyPrices(rows, 3)
		require.Len(t, points, 3)

		// 100 vs 110 -> -9.09%.
		require.NotNil(t, points[0].ChangePercent)
		assert.InDelta(t, -9.0909, *points[0].ChangePercent, 0.001)

		// 110 vs 99 -> +11.11%.
		require.NotNil(t, points[1].ChangePercent)
		assert.InDelta(t, 11.1111, *points[1].ChangePercent, 0.001)

		// Oldest returned row has no predecessor.
		assert.Nil(t, points[2].ChangePercent)
	})

	t.Run("lookback row is consumed, not emitted", func(t *testing.T) {
		rows := []*models.DailyPrice{
			row("2024-01-17", 102, 30),
			row("2024-01-16", 101, 20),
			row("2024-01-15", 100, 10),
		}

		points := FromDailyPrices(rows, 2)
		require.Len(t, points, 2)
		assert.Equal(t, "2024-01-17", points[0].Date)
		assert.Equal(t, "2024-01-16", points[1].Date)

		// Both emitted rows have a predecessor thanks to the extra row.
		require.NotNil(t, points[0].ChangePercent)
		require.NotNil(t, points[1].ChangePercent)
		assert.InDelta(t, 1.0, *points[1].ChangePercent, 0.001)
	})

	t.Run("zero predecessor close yields nil change", func(t *testing.T) {
		rows := []*models.DailyPrice{
			row("2024-01-16", 50, 20),
			row("2024-01-15", 0, 10),
		}

		points := FromDailyPrices(rows, 2)
		require.Len(t, points, 2)
		assert.Nil(t, points[0].ChangePercent)
		assert.Nil(t, points[1].ChangePercent)
	})

	t.Run("preserves descending order and emits ISO dates", func(t *testing.T) {
		rows := []*models.DailyPrice{
			row("2024-03-02", 11, 2),
			row("2024-03-01", 10, 1),
		}

		points := FromDailyPrices(rows, 2)
		require.Len(t, points, 2)
		assert.Equal(t, "2024-03-02", points[0].Date)
		assert.Equal(t, "2024-03-01", points[1].Date)
		assert.Equal(t, int64(2), points[0].Volume)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, FromDailyPrices(nil, 30))
	})

	t.Run("fewer rows than limit", func(t *testing.T) {
		rows := []*models.DailyPrice{
			row("2024-01-16", 101, 20),
			row("2024-01-15", 100, 10),
		}

		points := FromDailyPrices(rows, 30)
		require.Len(t, points, 2)
		require.NotNil(t, points[0].ChangePercent)
		assert.Nil(t, points[1].ChangePercent)
	})
}
