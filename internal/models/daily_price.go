package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MinPriceWindow and MaxPriceWindow bound how many daily rows a single
	// read may return.
	MinPriceWindow = 1
	MaxPriceWindow = 365
)

// DailyPrice represents a stored daily price row for a stock, unique per
// (symbol, date)
type DailyPrice struct {
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	Date      time.Time       `json:"date"`
	Low       decimal.Decimal `json:"low"`
	High      decimal.Decimal `json:"high"`
	Close     decimal.Decimal `json:"close"`
	Volume    int64           `json:"volume"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewDailyPrice is an incoming daily price row before it is written. The
// date travels as an ISO calendar date string.
type NewDailyPrice struct {
	Date   string          `json:"date"`
	Low    decimal.Decimal `json:"low"`
	High   decimal.Decimal `json:"high"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// Validate rejects rows that are missing a date or carry an unusable
// numeric field. It runs before any write touches the database.
func (p *NewDailyPrice) Validate() error {
	if p.Date == "" {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if _, err := time.Parse(time.DateOnly, p.Date); err != nil {
		return &ValidationError{Field: "date", Reason: "must be formatted YYYY-MM-DD"}
	}
	if p.Volume < 0 {
		return &ValidationError{Field: "volume", Reason: "must not be negative"}
	}
	return nil
}

// ClampPriceWindow clamps a requested row window to the closed range
// [MinPriceWindow, MaxPriceWindow].
func ClampPriceWindow(limit int) int {
	if limit < MinPriceWindow {
		return MinPriceWindow
	}
	if limit > MaxPriceWindow {
		return MaxPriceWindow
	}
	return limit
}
