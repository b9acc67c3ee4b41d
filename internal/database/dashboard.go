package database

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/finboard/dashboard-service/internal/models"
)

// GetDashboardSummary runs the three independent dashboard card queries
// concurrently and combines their results once all have completed. Any one
// failing fails the whole aggregate; there is no partial dashboard.
func (db *DB) GetDashboardSummary() (*models.DashboardSummary, error) {
	if err := db.EnsureTables(InvoicesTable, CustomersTable); err != nil {
		return nil, err
	}

	var summary models.DashboardSummary
	var g errgroup.Group

	g.Go(func() error {
		err := db.conn.QueryRow(`SELECT COUNT(*) FROM invoices`).Scan(&summary.InvoiceCount)
		if err != nil {
			return fmt.Errorf("failed to count invoices: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := db.conn.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&summary.CustomerCount)
		if err != nil {
			return fmt.Errorf("failed to count customers: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		query := `
			SELECT
				COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
				COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
			FROM invoices
		`
		err := db.conn.QueryRow(query).Scan(&summary.TotalPaid, &summary.TotalPending)
		if err != nil {
			return fmt.Errorf("failed to sum invoice amounts: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &summary, nil
}
