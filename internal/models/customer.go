package models

// Customer represents a stored customer. Invoice totals are aggregated by
// join, never denormalized onto this row.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerSummary is a customer joined with aggregated invoice totals.
// Amounts are in minor currency units. Customers with no invoices appear
// with zeroed aggregates.
type CustomerSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  int64  `json:"total_pending"`
	TotalPaid     int64  `json:"total_paid"`
}

// CustomerName is the minimal id+name projection used by selection lists.
type CustomerName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
