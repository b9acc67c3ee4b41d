package models

import "time"

// Event types carried on the price ingestion topics.
const (
	EventPricesReceived = "PRICES_RECEIVED"
	EventPricesIngested = "PRICES_INGESTED"
)

// PriceBatchEvent is consumed from the ingest topic and carries a batch of
// daily price rows for one symbol.
type PriceBatchEvent struct {
	EventType string          `json:"event_type"`
	Symbol    string          `json:"symbol"`
	Prices    []NewDailyPrice `json:"prices"`
	Timestamp time.Time       `json:"timestamp"`
}

// PricesIngestedEvent is published after a batch of rows has been stored.
type PricesIngestedEvent struct {
	EventType string    `json:"event_type"`
	Symbol    string    `json:"symbol"`
	Rows      int       `json:"rows"`
	Timestamp time.Time `json:"timestamp"`
}
