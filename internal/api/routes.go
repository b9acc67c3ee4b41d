package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Stock time-series routes
	api.HandleFunc("/stocks/{symbol}/prices", handler.SubmitPrices).Methods("POST")
	api.HandleFunc("/stocks/{symbol}/prices", handler.GetPrices).Methods("GET")
	api.HandleFunc("/stocks/{symbol}/history", handler.GetHistory).Methods("GET")
	api.HandleFunc("/stocks/{symbol}/overview", handler.GetOverview).Methods("GET")
	api.HandleFunc("/stocks/{symbol}/overview", handler.UpsertOverview).Methods("PUT")
	api.HandleFunc("/stocks/{symbol}", handler.GetStockDetail).Methods("GET")

	// Invoice routes
	api.HandleFunc("/invoices", handler.GetInvoices).Methods("GET")
	api.HandleFunc("/invoices/pages", handler.GetInvoicePages).Methods("GET")
	api.HandleFunc("/invoices/latest", handler.GetLatestInvoices).Methods("GET")
	api.HandleFunc("/invoices/{id}", handler.GetInvoice).Methods("GET")

	// Customer routes
	api.HandleFunc("/customers", handler.GetCustomers).Methods("GET")
	api.HandleFunc("/customers/names", handler.GetCustomerNames).Methods("GET")

	// Dashboard summary and revenue chart
	api.HandleFunc("/dashboard", handler.GetDashboard).Methods("GET")
	api.HandleFunc("/revenue", handler.GetRevenue).Methods("GET")

	return r
}
