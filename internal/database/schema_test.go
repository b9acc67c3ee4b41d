package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaGuard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	t.Run("EnsureTable is idempotent", func(t *testing.T) {
		// The migrations already created every table; ensuring again must
		// be a no-op, not an error.
		for _, table := range []string{StocksTable, CompanyOverviewsTable, InvoicesTable, CustomersTable, RevenueTable} {
			require.NoError(t, testDB.EnsureTable(table))
			require.NoError(t, testDB.EnsureTable(table))
		}
	})

	t.Run("EnsureTable rejects unknown tables", func(t *testing.T) {
		err := testDB.EnsureTable("no_such_table")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown table")
	})

	t.Run("all tables exist", func(t *testing.T) {
		for _, table := range []string{StocksTable, CompanyOverviewsTable, InvoicesTable, CustomersTable, RevenueTable} {
			var exists bool
			err := testDB.GetRawConn().QueryRow(`
				SELECT EXISTS (
					SELECT FROM information_schema.tables
					WHERE table_schema = 'public'
					AND table_name = $1
				)
			`, table).Scan(&exists)

			require.NoError(t, err, "failed to check table existence for %s", table)
			assert.True(t, exists, "table %s should exist", table)
		}
	})
}
