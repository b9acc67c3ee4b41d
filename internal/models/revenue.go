package models

// Revenue is one month of aggregate revenue for the dashboard chart.
// Month is a short month label ("Jan", "Feb", ...), unique per row.
type Revenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
