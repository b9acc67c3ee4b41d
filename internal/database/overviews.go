package database

import (
	"database/sql"
	"fmt"

	"github.com/finboard/dashboard-service/internal/models"
)

// UpsertCompanyOverview inserts a company overview or, when a row for the
// same symbol already exists, replaces every descriptive field and
// refreshes the updated timestamp. Returns the normalized symbol.
func (db *DB) UpsertCompanyOverview(o *models.CompanyOverview) (string, error) {
	sym, err := models.NormalizeSymbol(o.Symbol)
	if err != nil {
		return "", err
	}

	o.ApplyDefaults()

	if err := db.EnsureTable(CompanyOverviewsTable); err != nil {
		return "", err
	}

	query := `
		INSERT INTO company_overviews (
			symbol, asset_type, name, description, exchange, sector, industry, market_capitalization, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (symbol) DO UPDATE SET
			asset_type = EXCLUDED.asset_type,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			exchange = EXCLUDED.exchange,
			sector = EXCLUDED.sector,
			industry = EXCLUDED.industry,
			market_capitalization = EXCLUDED.market_capitalization,
			updated_at = NOW()
	`
	_, err = db.conn.Exec(query,
		sym, o.AssetType, o.Name, o.Description, o.Exchange, o.Sector, o.Industry, o.MarketCapitalization,
	)
	if err != nil {
		return "", fmt.Errorf("failed to store company overview for %s: %w", sym, err)
	}

	return sym, nil
}

// GetCompanyOverview retrieves the stored overview for a symbol. Absence is
// not an error: it returns (nil, nil) when no row exists.
func (db *DB) GetCompanyOverview(symbol string) (*models.CompanyOverview, error) {
	sym, err := models.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureTable(CompanyOverviewsTable); err != nil {
		return nil, err
	}

	query := `
		SELECT id, symbol, asset_type, name, description, exchange, sector, industry, market_capitalization, updated_at
		FROM company_overviews
		WHERE symbol = $1
	`
	var o models.CompanyOverview
	err = db.conn.QueryRow(query, sym).Scan(
		&o.ID, &o.Symbol, &o.AssetType, &o.Name, &o.Description,
		&o.Exchange, &o.Sector, &o.Industry, &o.MarketCapitalization, &o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company overview for %s: %w", sym, err)
	}

	return &o, nil
}
