package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	t.Run("GetFilteredCustomers aggregates invoice totals", func(t *testing.T) {
		testDB.TruncateAll(t)

		acme := seedCustomer(t, testDB, "Acme Corp", "billing@acme.com")
		seedInvoice(t, testDB, acme, 10000, "paid", "2024-01-02")
		seedInvoice(t, testDB, acme, 20000, "paid", "2024-01-03")
		seedInvoice(t, testDB, acme, 5000, "pending", "2024-01-04")

		customers, err := testDB.GetFilteredCustomers("acme")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, int64(3), customers[0].TotalInvoices)
		assert.Equal(t, int64(5000), customers[0].TotalPending)
		assert.Equal(t, int64(30000), customers[0].TotalPaid)
	})

	t.Run("customers with no invoices appear with zeroed totals", func(t *testing.T) {
		testDB.TruncateAll(t)

		seedCustomer(t, testDB, "Acme Corp", "billing@acme.com")

		customers, err := testDB.GetFilteredCustomers("acme")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, int64(0), customers[0].TotalInvoices)
		assert.Equal(t, int64(0), customers[0].TotalPending)
		assert.Equal(t, int64(0), customers[0].TotalPaid)
	})

	t.Run("GetFilteredCustomers matches name or email", func(t *testing.T) {
		testDB.TruncateAll(t)

		seedCustomer(t, testDB, "Acme Corp", "billing@acme.com")
		seedCustomer(t, testDB, "Widget Works", "accounts@widgets.dev")

		byName, err := testDB.GetFilteredCustomers("widget")
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "Widget Works", byName[0].Name)

		byEmail, err := testDB.GetFilteredCustomers("billing@")
		require.NoError(t, err)
		require.Len(t, byEmail, 1)
		assert.Equal(t, "Acme Corp", byEmail[0].Name)

		all, err := testDB.GetFilteredCustomers("")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("GetCustomerNames orders by name", func(t *testing.T) {
		testDB.TruncateAll(t)

		seedCustomer(t, testDB, "Widget Works", "accounts@widgets.dev")
		seedCustomer(t, testDB, "Acme Corp", "billing@acme.com")

		names, err := testDB.GetCustomerNames()
		require.NoError(t, err)
		require.Len(t, names, 2)
		assert.Equal(t, "Acme Corp", names[0].Name)
		assert.Equal(t, "Widget Works", names[1].Name)
	})
}
