package models

// Quote is a best-effort snapshot of the current market price for a symbol.
// A nil *Quote means "no current price available" and is not an error.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}
