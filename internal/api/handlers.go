package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard-service/internal/database"
	"github.com/finboard/dashboard-service/internal/history"
	"github.com/finboard/dashboard-service/internal/kafka"
	"github.com/finboard/dashboard-service/internal/models"
	"github.com/finboard/dashboard-service/internal/quote"
)

const (
	defaultPriceWindow   = 30
	defaultHistoryWindow = 90
	latestInvoicesCount  = 5
)

// Handler holds dependencies for HTTP handlers. The producer may be nil
// when Kafka is disabled.
type Handler struct {
	db       *database.DB
	producer *kafka.Producer
	quoter   quote.Quoter
}

// NewHandler creates a new Handler.
func NewHandler(db *database.DB, producer *kafka.Producer, quoter quote.Quoter) *Handler {
	if quoter == nil {
		quoter = quote.Noop{}
	}
	return &Handler{
		db:       db,
		producer: producer,
		quoter:   quoter,
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SubmitPrices handles POST /api/v1/stocks/{symbol}/prices
func (h *Handler) SubmitPrices(w http.ResponseWriter, r *http.Request) {
	sym, err := models.NormalizeSymbol(mux.Vars(r)["symbol"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Prices []models.NewDailyPrice `json:"prices"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rows, err := h.db.UpsertDailyPrices(sym, req.Prices)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Error())
			return
		}
		logrus.WithError(err).Error("failed to store stock prices")
		respondError(w, http.StatusInternalServerError, "failed to store stock prices")
		return
	}

	if h.producer != nil {
		if err := h.producer.PublishPricesIngested(r.Context(), sym, rows); err != nil {
			logrus.WithError(err).Warn("failed to publish prices ingested event")
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"symbol": sym,
		"rows":   rows,
	})
}

// GetPrices handles GET /api/v1/stocks/{symbol}/prices
func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	limit := queryInt(r, "limit", defaultPriceWindow)

	prices, err := h.db.GetDailyPrices(symbol, limit)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Error())
			return
		}
		logrus.WithError(err).Error("failed to fetch stock prices")
		respondError(w, http.StatusInternalServerError, "failed to fetch stock prices")
		return
	}

	respondJSON(w, http.StatusOK, prices)
}

// GetHistory handles GET /api/v1/stocks/{symbol}/history
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	limit := models.ClampPriceWindow(queryInt(r, "limit", defaultHistoryWindow))

	rows, err := h.db.GetDailyPricesWithLookback(symbol, limit)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Error())
			return
		}
		logrus.WithError(err).Error("failed to fetch stock prices")
		respondError(w, http.StatusInternalServerError, "failed to fetch stock prices")
		return
	}

	respondJSON(w, http.StatusOK, history.FromDailyPrices(rows, limit))
}

// GetOverview handles GET /api/v1/stocks/{symbol}/overview
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	overview, err := h.db.GetCompanyOverview(symbol)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Error())
			return
		}
		logrus.WithError(err).Error("failed to fetch company overview")
		respondError(w, http.StatusInternalServerError, "failed to fetch company overview")
		return
	}
	if overview == nil {
		respondError(w, http.StatusNotFound, "company overview not found")
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

// UpsertOverview handles PUT /api/v1/stocks/{symbol}/overview
func (h *Handler) UpsertOverview(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	var overview models.CompanyOverview
	if err := json.NewDecoder(r.Body).Decode(&overview); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	overview.Symbol = symbol

	sym, err := h.db.UpsertCompanyOverview(&overview)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Error())
			return
		}
		logrus.WithError(err).Error("failed to store company overview")
		respondError(w, http.StatusInternalServerError, "failed to store company overview")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"symbol": sym})
}

// stockDetailResponse combines everything the stock detail page needs.
// Overview and quote are nullable: their reads degrade to absent results
// with a warning instead of failing the whole response.
type stockDetailResponse struct {
	Symbol     string                        `json:"symbol"`
	Overview   *models.CompanyOverview       `json:"overview"`
	Historical []models.HistoricalPricePoint `json:"historical"`
	Quote      *models.Quote                 `json:"quote"`
	Warnings   []string                      `json:"warnings,omitempty"`
}

// GetStockDetail handles GET /api/v1/stocks/{symbol}
func (h *Handler) GetStockDetail(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	sym, err := models.NormalizeSymbol(symbol)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := models.ClampPriceWindow(queryInt(r, "limit", defaultHistoryWindow))

	detail := stockDetailResponse{
		Symbol:     sym,
		Historical: []models.HistoricalPricePoint{},
	}

	overview, err := h.db.GetCompanyOverview(sym)
	if err != nil {
		logrus.WithError(err).WithField("symbol", sym).Warn("company overview unavailable")
		detail.Warnings = append(detail.Warnings, "company overview unavailable")
	} else {
		detail.Overview = overview
	}

	rows, err := h.db.GetDailyPricesWithLookback(sym, limit)
	if err != nil {
		logrus.WithError(err).WithField("symbol", sym).Warn("price history unavailable")
		detail.Warnings = append(detail.Warnings, "price history unavailable")
	} else {
		detail.Historical = history.FromDailyPrices(rows, limit)
	}

	q, err := h.quoter.Quote(r.Context(), sym)
	if err != nil {
		logrus.WithError(err).WithField("symbol", sym).Warn("current quote unavailable")
		detail.Warnings = append(detail.Warnings, "current quote unavailable")
	} else {
		detail.Quote = q
	}

	respondJSON(w, http.StatusOK, detail)
}

// GetInvoices handles GET /api/v1/invoices
func (h *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page := queryInt(r, "page", 1)

	invoices, err := h.db.GetFilteredInvoices(query, page)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch invoices")
		respondError(w, http.StatusInternalServerError, "failed to fetch invoices")
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

// GetInvoicePages handles GET /api/v1/invoices/pages
func (h *Handler) GetInvoicePages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	pages, err := h.db.CountInvoicePages(query)
	if err != nil {
		logrus.WithError(err).Error("failed to count invoice pages")
		respondError(w, http.StatusInternalServerError, "failed to count invoice pages")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"pages": pages})
}

// GetLatestInvoices handles GET /api/v1/invoices/latest
func (h *Handler) GetLatestInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.db.GetLatestInvoices(latestInvoicesCount)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch latest invoices")
		respondError(w, http.StatusInternalServerError, "failed to fetch latest invoices")
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

// invoiceResponse is the single-invoice read shape. Amount is converted to
// major currency units at this boundary only; storage stays in cents.
type invoiceResponse struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customer_id"`
	Amount     float64              `json:"amount"`
	Status     models.InvoiceStatus `json:"status"`
	Date       string               `json:"date"`
}

// GetInvoice handles GET /api/v1/invoices/{id}
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	invoice, err := h.db.GetInvoiceByID(id)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch invoice")
		respondError(w, http.StatusInternalServerError, "failed to fetch invoice")
		return
	}
	if invoice == nil {
		respondError(w, http.StatusNotFound, "invoice not found")
		return
	}

	respondJSON(w, http.StatusOK, invoiceResponse{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
		Date:       invoice.Date.Format("2006-01-02"),
	})
}

// GetCustomers handles GET /api/v1/customers
func (h *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	customers, err := h.db.GetFilteredCustomers(query)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch customers")
		respondError(w, http.StatusInternalServerError, "failed to fetch customers")
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

// GetCustomerNames handles GET /api/v1/customers/names
func (h *Handler) GetCustomerNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.db.GetCustomerNames()
	if err != nil {
		logrus.WithError(err).Error("failed to fetch customer names")
		respondError(w, http.StatusInternalServerError, "failed to fetch customer names")
		return
	}

	respondJSON(w, http.StatusOK, names)
}

// GetRevenue handles GET /api/v1/revenue
func (h *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.db.GetRevenue()
	if err != nil {
		logrus.WithError(err).Error("failed to fetch revenue")
		respondError(w, http.StatusInternalServerError, "failed to fetch revenue")
		return
	}

	respondJSON(w, http.StatusOK, revenue)
}

// GetDashboard handles GET /api/v1/dashboard
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.db.GetDashboardSummary()
	if err != nil {
		logrus.WithError(err).Error("failed to fetch dashboard summary")
		respondError(w, http.StatusInternalServerError, "failed to fetch dashboard summary")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
