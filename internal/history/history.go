// Package history derives display metrics from raw daily price windows.
package history

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finboard/dashboard-service/internal/models"
)

// FromDailyPrices converts a descending raw window into a percent-change
// annotated series. The input should hold up to limit+1 rows: the extra
// oldest row is a lookback used only to compute the change for the last
// returned point. For each point the change pairs its close against the
// chronologically previous close (the next row in descending order):
//
//	change = (close - prevClose) / prevClose * 100
//
// The change is nil when no predecessor row exists, when the predecessor
// close is zero, or when either close is not a finite number. Output
// preserves descending date order.
func FromDailyPrices(rows []*models.DailyPrice, limit int) []models.HistoricalPricePoint {
	points := make([]models.HistoricalPricePoint, 0, min(limit, len(rows)))

	for i, row := range rows {
		if i >= limit {
			break
		}

		closeVal, closeOK := finite(row.Close)

		var change *float64
		if i+1 < len(rows) {
			prevClose, prevOK := finite(rows[i+1].Close)
			if closeOK && prevOK && prevClose != 0 {
				pct := (closeVal - prevClose) / prevClose * 100
				change = &pct
			}
		}

		points = append(points, models.HistoricalPricePoint{
			Date:          row.Date.Format(time.DateOnly),
			Close:         closeVal,
			Volume:        row.Volume,
			ChangePercent: change,
		})
	}

	return points
}

func finite(d decimal.Decimal) (float64, bool) {
	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f, false
	}
	return f, true
}
