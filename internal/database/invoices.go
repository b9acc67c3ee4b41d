package database

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/finboard/dashboard-service/internal/models"
)

// InvoicesPerPage is the fixed page size for filtered invoice search.
const InvoicesPerPage = 6

// invoiceSearchFilter matches the query substring case-insensitively
// against customer name, customer email, the amount and date rendered as
// text, and the invoice status.
func invoiceSearchFilter(query string) squirrel.Or {
	pattern := "%" + query + "%"
	return squirrel.Or{
		squirrel.ILike{"customers.name": pattern},
		squirrel.ILike{"customers.email": pattern},
		squirrel.Expr("invoices.amount::text ILIKE ?", pattern),
		squirrel.Expr("invoices.date::text ILIKE ?", pattern),
		squirrel.ILike{"invoices.status": pattern},
	}
}

// GetFilteredInvoices returns one page of invoices matching the query,
// joined with customer display fields, ordered by date descending. Pages
// are 1-based and six rows long.
func (db *DB) GetFilteredInvoices(query string, page int) ([]*models.InvoiceWithCustomer, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * InvoicesPerPage

	if err := db.EnsureTables(InvoicesTable, CustomersTable); err != nil {
		return nil, err
	}

	sqlQuery, args, err := squirrel.
		Select(
			"invoices.id",
			"invoices.amount",
			"invoices.date",
			"invoices.status",
			"customers.name",
			"customers.email",
			"customers.image_url",
		).
		From("invoices").
		Join("customers ON invoices.customer_id = customers.id").
		Where(invoiceSearchFilter(query)).
		OrderBy("invoices.date DESC").
		Limit(InvoicesPerPage).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build invoice search query: %w", err)
	}

	rows, err := db.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]*models.InvoiceWithCustomer, 0)
	for rows.Next() {
		var inv models.InvoiceWithCustomer
		if err := rows.Scan(
			&inv.ID, &inv.Amount, &inv.Date, &inv.Status, &inv.Name, &inv.Email, &inv.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}

	return invoices, nil
}

// CountInvoicePages returns the number of six-row pages needed to show
// every invoice matching the query.
func (db *DB) CountInvoicePages(query string) (int, error) {
	if err := db.EnsureTables(InvoicesTable, CustomersTable); err != nil {
		return 0, err
	}

	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From("invoices").
		Join("customers ON invoices.customer_id = customers.id").
		Where(invoiceSearchFilter(query)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build invoice count query: %w", err)
	}

	var count int
	if err := db.conn.QueryRow(sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	return (count + InvoicesPerPage - 1) / InvoicesPerPage, nil
}

// GetInvoiceByID retrieves a single invoice. Absence is not an error: it
// returns (nil, nil) when no row exists. The amount stays in minor units.
func (db *DB) GetInvoiceByID(id string) (*models.Invoice, error) {
	if err := db.EnsureTable(InvoicesTable); err != nil {
		return nil, err
	}

	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`
	var inv models.Invoice
	err := db.conn.QueryRow(query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice %s: %w", id, err)
	}

	return &inv, nil
}

// GetLatestInvoices returns the most recent invoices joined with customer
// display fields, newest first. Limits below one are clamped to one; the
// dashboard's default count lives at the API boundary.
func (db *DB) GetLatestInvoices(limit int) ([]*models.InvoiceWithCustomer, error) {
	if limit < 1 {
		limit = 1
	}

	if err := db.EnsureTables(InvoicesTable, CustomersTable); err != nil {
		return nil, err
	}

	query := `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1
	`
	rows, err := db.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]*models.InvoiceWithCustomer, 0)
	for rows.Next() {
		var inv models.InvoiceWithCustomer
		if err := rows.Scan(
			&inv.ID, &inv.Amount, &inv.Date, &inv.Status, &inv.Name, &inv.Email, &inv.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan latest invoice: %w", err)
		}
		invoices = append(invoices, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate latest invoices: %w", err)
	}

	return invoices, nil
}
