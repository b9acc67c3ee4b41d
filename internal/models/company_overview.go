package models

import "time"

// OverviewDefault fills descriptive overview fields that the upstream data
// source left blank.
const OverviewDefault = "N/A"

// CompanyOverview holds descriptive metadata for a ticker symbol, unique
// per symbol
type CompanyOverview struct {
	ID                   string    `json:"id,omitempty"`
	Symbol               string    `json:"symbol"`
	AssetType            string    `json:"asset_type"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Exchange             string    `json:"exchange"`
	Sector               string    `json:"sector"`
	Industry             string    `json:"industry"`
	MarketCapitalization string    `json:"market_capitalization"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ApplyDefaults replaces empty descriptive fields with OverviewDefault so
// the stored row never carries blanks.
func (o *CompanyOverview) ApplyDefaults() {
	for _, field := range []*string{
		&o.AssetType,
		&o.Name,
		&o.Description,
		&o.Exchange,
		&o.Sector,
		&o.Industry,
		&o.MarketCapitalization,
	} {
		if *field == "" {
			*field = OverviewDefault
		}
	}
}
