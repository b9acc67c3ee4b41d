package database

import (
	"fmt"

	"github.com/finboard/dashboard-service/internal/models"
)

// GetRevenue returns every monthly revenue row for the dashboard chart.
func (db *DB) GetRevenue() ([]models.Revenue, error) {
	if err := db.EnsureTable(RevenueTable); err != nil {
		return nil, err
	}

	rows, err := db.conn.Query(`SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch revenue: %w", err)
	}
	defer rows.Close()

	revenue := make([]models.Revenue, 0)
	for rows.Next() {
		var r models.Revenue
		if err := rows.Scan(&r.Month, &r.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue: %w", err)
		}
		revenue = append(revenue, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenue: %w", err)
	}

	return revenue, nil
}
