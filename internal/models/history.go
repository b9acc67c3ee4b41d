package models

// HistoricalPricePoint is a derived, non-persisted view of a daily price
// row annotated with the day-over-day percent change. ChangePercent is nil
// when no predecessor close exists to compute it against.
type HistoricalPricePoint struct {
	Date          string   `json:"date"`
	Close         float64  `json:"close"`
	Volume        int64    `json:"volume"`
	ChangePercent *float64 `json:"change_percent"`
}
