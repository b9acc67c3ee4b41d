package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/dashboard-service/internal/models"
)

func TestCompanyOverviewStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	t.Run("GetCompanyOverview returns nil before any upsert", func(t *testing.T) {
		testDB.TruncateAll(t)

		overview, err := testDB.GetCompanyOverview("AAPL")
		require.NoError(t, err)
		assert.Nil(t, overview)
	})

	t.Run("UpsertCompanyOverview inserts a new row", func(t *testing.T) {
		testDB.TruncateAll(t)

		sym, err := testDB.UpsertCompanyOverview(&models.CompanyOverview{
			Symbol:               "AAPL",
			AssetType:            "Common Stock",
			Name:                 "Apple Inc.",
			Description:          "Consumer electronics company",
			Exchange:             "NASDAQ",
			Sector:               "Technology",
			Industry:             "Consumer Electronics",
			MarketCapitalization: "2.8T",
		})
		require.NoError(t, err)
		assert.Equal(t, "AAPL", sym)

		overview, err := testDB.GetCompanyOverview("AAPL")
		require.NoError(t, err)
		require.NotNil(t, overview)
		assert.Equal(t, "Apple Inc.", overview.Name)
		assert.Equal(t, "NASDAQ", overview.Exchange)
	})

	t.Run("UpsertCompanyOverview replaces fields on conflict", func(t *testing.T) {
		testDB.TruncateAll(t)

		_, err := testDB.UpsertCompanyOverview(&models.CompanyOverview{
			Symbol: "AAPL",
			Name:   "Apple Inc.",
			Sector: "Technology",
		})
		require.NoError(t, err)

		_, err = testDB.UpsertCompanyOverview(&models.CompanyOverview{
			Symbol: "AAPL",
			Name:   "Apple Incorporated",
			Sector: "Consumer Technology",
		})
		require.NoError(t, err)

		overview, err := testDB.GetCompanyOverview("AAPL")
		require.NoError(t, err)
		require.NotNil(t, overview)
		assert.Equal(t, "Apple Incorporated", overview.Name)
		assert.Equal(t, "Consumer Technology", overview.Sector)
	})

	t.Run("empty descriptive fields default to N/A", func(t *testing.T) {
		testDB.TruncateAll(t)

		_, err := testDB.UpsertCompanyOverview(&models.CompanyOverview{
			Symbol: "TSM",
			Name:   "Taiwan Semiconductor",
		})
		require.NoError(t, err)

		overview, err := testDB.GetCompanyOverview("TSM")
		require.NoError(t, err)
		require.NotNil(t, overview)
		assert.Equal(t, "N/A", overview.AssetType)
		assert.Equal(t, "N/A", overview.Industry)
		assert.Equal(t, "N/A", overview.MarketCapitalization)
	})

	t.Run("symbol normalization is case and whitespace insensitive", func(t *testing.T) {
		testDB.TruncateAll(t)

		sym, err := testDB.UpsertCompanyOverview(&models.CompanyOverview{
			Symbol: " aapl ",
			Name:   "Apple Inc.",
		})
		require.NoError(t, err)
		assert.Equal(t, "AAPL", sym)

		overview, err := testDB.GetCompanyOverview("AAPL")
		require.NoError(t, err)
		require.NotNil(t, overview)
		assert.Equal(t, "AAPL", overview.Symbol)
		assert.Equal(t, "Apple Inc.", overview.Name)
	})

	t.Run("empty symbol is a validation error", func(t *testing.T) {
		_, err := testDB.UpsertCompanyOverview(&models.CompanyOverview{Symbol: "   "})
		require.Error(t, err)
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
