package database

import (
	"fmt"
)

// Table names known to the schema guard.
const (
	StocksTable           = "stocks"
	CompanyOverviewsTable = "company_overviews"
	InvoicesTable         = "invoices"
	CustomersTable        = "customers"
	RevenueTable          = "revenue"
)

var tableSchemas = map[string]string{
	StocksTable: `
		CREATE TABLE IF NOT EXISTS stocks (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL,
			date DATE NOT NULL,
			low NUMERIC(12, 4) NOT NULL,
			high NUMERIC(12, 4) NOT NULL,
			close NUMERIC(12, 4) NOT NULL,
			volume BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE(symbol, date)
		)
	`,
	CompanyOverviewsTable: `
		CREATE TABLE IF NOT EXISTS company_overviews (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL UNIQUE,
			asset_type VARCHAR(50) NOT NULL DEFAULT 'N/A',
			name VARCHAR(255) NOT NULL DEFAULT 'N/A',
			description TEXT NOT NULL DEFAULT 'N/A',
			exchange VARCHAR(50) NOT NULL DEFAULT 'N/A',
			sector VARCHAR(100) NOT NULL DEFAULT 'N/A',
			industry VARCHAR(100) NOT NULL DEFAULT 'N/A',
			market_capitalization VARCHAR(50) NOT NULL DEFAULT 'N/A',
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`,
	CustomersTable: `
		CREATE TABLE IF NOT EXISTS customers (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			image_url VARCHAR(255) NOT NULL
		)
	`,
	InvoicesTable: `
		CREATE TABLE IF NOT EXISTS invoices (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			customer_id UUID NOT NULL,
			amount INT NOT NULL,
			status VARCHAR(255) NOT NULL,
			date DATE NOT NULL
		)
	`,
	RevenueTable: `
		CREATE TABLE IF NOT EXISTS revenue (
			month VARCHAR(4) NOT NULL UNIQUE,
			revenue INT NOT NULL
		)
	`,
}

// EnsureTable idempotently creates the named table and its prerequisite
// extension. It is safe to call before every operation; a failure here is
// fatal to the calling operation and is surfaced, not retried.
func (db *DB) EnsureTable(name string) error {
	ddl, ok := tableSchemas[name]
	if !ok {
		return fmt.Errorf("unknown table: %s", name)
	}

	if _, err := db.conn.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`); err != nil {
		return fmt.Errorf("failed to ensure uuid-ossp extension: %w", err)
	}

	if _, err := db.conn.Exec(ddl); err != nil {
		return fmt.Errorf("failed to ensure table %s: %w", name, err)
	}

	return nil
}

// EnsureTables runs EnsureTable for each name, stopping at the first failure.
func (db *DB) EnsureTables(names ...string) error {
	for _, name := range names {
		if err := db.EnsureTable(name); err != nil {
			return err
		}
	}
	return nil
}
