package models

// DashboardSummary combines the independent dashboard card queries into one
// record. Totals are in minor currency units.
type DashboardSummary struct {
	InvoiceCount  int64 `json:"invoice_count"`
	CustomerCount int64 `json:"customer_count"`
	TotalPaid     int64 `json:"total_paid"`
	TotalPending  int64 `json:"total_pending"`
}
