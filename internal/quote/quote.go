// Package quote provides best-effort current price lookups. A nil quote is
// a defined "no current price" result, never an error to act on.
package quote

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/finboard/dashboard-service/internal/models"
)

// Quoter looks up the current market quote for a symbol. Implementations
// return (nil, nil) when no quote is available.
type Quoter interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
}

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooClient fetches quotes from the Yahoo Finance chart endpoint.
type YahooClient struct {
	client *resty.Client
}

// NewYahooClient creates a quote client. baseURL overrides the Yahoo
// endpoint; pass "" for the default.
func NewYahooClient(baseURL string) *YahooClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("User-Agent", "Mozilla/5.0")

	return &YahooClient{client: client}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

// Quote fetches the current price for a symbol. Unexpected payload shapes
// map to (nil, nil); transport and HTTP failures are returned for the
// caller to degrade on.
func (c *YahooClient) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	sym, err := models.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	var out chartResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"range": "1d", "interval": "1d"}).
		SetResult(&out).
		Get("/v8/finance/chart/" + url.PathEscape(sym))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", sym, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("quote request for %s returned %s", sym, resp.Status())
	}

	if len(out.Chart.Result) == 0 {
		return nil, nil
	}
	meta := out.Chart.Result[0].Meta
	if meta.RegularMarketPrice == 0 {
		return nil, nil
	}

	price := meta.RegularMarketPrice
	prevClose := meta.PreviousClose
	if prevClose == 0 {
		prevClose = price
	}

	change := price - prevClose
	changePercent := 0.0
	if prevClose != 0 {
		changePercent = change / prevClose * 100
	}

	return &models.Quote{
		Symbol:        sym,
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
	}, nil
}

// Noop is a Quoter that never has a quote. Used in tests and when the
// external lookup is disabled.
type Noop struct{}

func (Noop) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	return nil, nil
}
