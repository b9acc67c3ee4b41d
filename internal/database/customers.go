package database

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/finboard/dashboard-service/internal/models"
)

// GetFilteredCustomers returns customers whose name or email matches the
// query, each joined with aggregated invoice totals. Customers with no
// invoices appear with zeroed aggregates.
func (db *DB) GetFilteredCustomers(query string) ([]*models.CustomerSummary, error) {
	if err := db.EnsureTables(CustomersTable, InvoicesTable); err != nil {
		return nil, err
	}

	pattern := "%" + query + "%"
	sqlQuery, args, err := squirrel.
		Select(
			"customers.id",
			"customers.name",
			"customers.email",
			"customers.image_url",
			"COUNT(invoices.id) AS total_invoices",
			"COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending",
			"COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid",
		).
		From("customers").
		LeftJoin("invoices ON customers.id = invoices.customer_id").
		Where(squirrel.Or{
			squirrel.ILike{"customers.name": pattern},
			squirrel.ILike{"customers.email": pattern},
		}).
		GroupBy("customers.id", "customers.name", "customers.email", "customers.image_url").
		OrderBy("customers.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build customer search query: %w", err)
	}

	rows, err := db.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*models.CustomerSummary, 0)
	for rows.Next() {
		var c models.CustomerSummary
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.TotalInvoices, &c.TotalPending, &c.TotalPaid,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// GetCustomerNames returns every customer's id and name ordered by name.
func (db *DB) GetCustomerNames() ([]*models.CustomerName, error) {
	if err := db.EnsureTable(CustomersTable); err != nil {
		return nil, err
	}

	rows, err := db.conn.Query(`SELECT id, name FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer names: %w", err)
	}
	defer rows.Close()

	names := make([]*models.CustomerName, 0)
	for rows.Next() {
		var n models.CustomerName
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, fmt.Errorf("failed to scan customer name: %w", err)
		}
		names = append(names, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer names: %w", err)
	}

	return names, nil
}
