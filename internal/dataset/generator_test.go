package dataset

import (
	"math/rand"
	"path/filepath"
	"strconv"
	"testing"

	"idealPrice/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	table := Generate(rand.New(rand.NewSource(20240101)), 50)

	require.Len(t, table.Rows, 50)
	assert.Equal(t, "product_id", table.Headers[0])
	assert.Equal(t, "p", table.Headers[len(table.Headers)-1])

	src, err := ParseTable(domain.GroupA, table)
	require.NoError(t, err)

	for i, rec := range src.Records {
		assert.Equal(t, int64(i+1), rec.ProductID)
		assertInRange(t, rec.SellersPrice, sellersPriceRange)
		assertInRange(t, rec.ABDelta, abDeltaRange)
		assertInRange(t, rec.SellerTrustIncrease, trustRange)
		assertInRange(t, rec.SeasonalPriceIncrease, seasonalRange)
		assertInRange(t, rec.PriceElasticity, elasticityRange)
		for _, d := range domain.Weekdays {
			assertInRange(t, rec.AvgRevenue[d], revenueRange)
			assertInRange(t, rec.AvgDemand[d], demandRange)
		}
	}

	for _, row := range table.Rows {
		for _, cell := range row[1:] {
			f, err := strconv.ParseFloat(cell, 64)
			require.NoError(t, err)
			assert.Equal(t, cell, strconv.FormatFloat(f, 'f', -1, 64))
			assert.LessOrEqual(t, decimals(cell), 2, cell)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(7)), 5)
	b := Generate(rand.New(rand.NewSource(7)), 5)
	assert.Equal(t, a, b)
}

func TestWriteAndReadBack(t *testing.T) {
	table := Generate(rand.New(rand.NewSource(1)), 10)
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "group_a.csv")
	require.NoError(t, WriteCSVFile(csvPath, table))
	fromCSV, err := ReadCSVFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, table, fromCSV)

	xlsxPath := filepath.Join(dir, "group_a.xlsx")
	require.NoError(t, WriteXLSXFile(xlsxPath, table))
	fromXLSX, err := ReadXLSXFile(xlsxPath)
	require.NoError(t, err)

	srcCSV, err := ParseTable(domain.GroupA, fromCSV)
	require.NoError(t, err)
	srcXLSX, err := ParseTable(domain.GroupA, fromXLSX)
	require.NoError(t, err)
	assert.Equal(t, srcCSV, srcXLSX)
}

func assertInRange(t *testing.T, v domain.OptionalFloat, u uniform) {
	t.Helper()
	require.True(t, v.Valid)
	assert.GreaterOrEqual(t, v.Value, u.min)
	assert.LessOrEqual(t, v.Value, u.max)
}

func decimals(cell string) int {
	for i := range cell {
		if cell[i] == '.' {
			return len(cell) - i - 1
		}
	}
	return 0
}
