package postgres

import (
	"context"
	"testing"

	"idealPrice/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRecord(id int64) domain.ProductRecord {
	rec := domain.ProductRecord{
		ProductID:             id,
		SellersPrice:          domain.Present(10),
		AvgRevenue:            map[domain.Weekday]domain.OptionalFloat{},
		AvgDemand:             map[domain.Weekday]domain.OptionalFloat{},
		ABDelta:               domain.Present(0.02),
		SellerTrustIncrease:   domain.Present(0.1),
		SeasonalPriceIncrease: domain.Present(0.2),
		PriceElasticity:       domain.Present(0.5),
	}
	for i, d := range domain.Weekdays {
		rec.AvgRevenue[d] = domain.Present(float64(100 * (i + 1)))
		rec.AvgDemand[d] = domain.Present(1 + float64(i)/10)
	}
	return rec
}

func TestRowRoundTrip(t *testing.T) {
	rec := fullRecord(4)

	row := rowFromRecord(domain.GroupB, rec)
	assert.Equal(t, "group_b", row.GroupName)
	require.NotNil(t, row.AvgRevenueSunday)
	assert.Equal(t, 700.0, *row.AvgRevenueSunday)

	assert.Equal(t, rec, row.Record())
}

func TestRowFromRecord_NullsMissingCells(t *testing.T) {
	rec := fullRecord(9)
	rec.SellersPrice = domain.OptionalFloat{}
	rec.AvgDemand[domain.Friday] = domain.OptionalFloat{}

	row := rowFromRecord(domain.GroupA, rec)
	assert.Nil(t, row.SellersPrice)
	assert.Nil(t, row.AvgDemandFridayPerc)

	back := row.Record()
	assert.False(t, back.SellersPrice.Valid)
	assert.False(t, back.AvgDemand[domain.Friday].Valid)
	assert.True(t, back.AvgDemand[domain.Thursday].Valid)
}

func TestSourceFromRows(t *testing.T) {
	rows := []domain.ProductRecordRow{
		rowFromRecord(domain.GroupA, fullRecord(1)),
		rowFromRecord(domain.GroupA, fullRecord(2)),
	}

	src := sourceFromRows(domain.GroupA, rows)
	assert.Equal(t, domain.GroupA, src.Label)
	assert.Len(t, src.Records, 2)
	assert.True(t, src.HasColumn("avg_demand_sunday_perc"))

	rec, ok := src.FindRecord(2)
	require.True(t, ok)
	assert.Equal(t, int64(2), rec.ProductID)
}

func TestLoadDataset_RejectsUnknownGroup(t *testing.T) {
	repo := NewProductRecordRepository(nil)

	_, err := repo.LoadDataset(context.Background(), "group_c")
	assert.ErrorContains(t, err, "unknown dataset group")
}
