package models

import "time"

// InvoiceStatus enumerates the lifecycle states of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice represents a stored invoice. Amount is in minor currency units
// (cents); conversion to major units happens only at the read boundary.
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       time.Time     `json:"date"`
}

// InvoiceWithCustomer is an invoice row joined with its customer's display
// fields, as returned by the filtered search.
type InvoiceWithCustomer struct {
	ID       string        `json:"id"`
	Amount   int64         `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   InvoiceStatus `json:"status"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	ImageURL string        `json:"image_url"`
}
