package pricing

import (
	"idealPrice/domain"
)

type recordOpt func(r *domain.ProductRecord)

// newRecord builds a row carrying every dataset column, with neutral demand
// and the given revenue on each weekday.
func newRecord(id int64, price float64, dailyRevenue float64, opts ...recordOpt) domain.ProductRecord {
	r := domain.ProductRecord{
		ProductID:    id,
		SellersPrice: domain.Present(price),
		AvgRevenue:   map[domain.Weekday]domain.OptionalFloat{},
		AvgDemand:    map[domain.Weekday]domain.OptionalFloat{},
	}
	for _, d := range domain.Weekdays {
		r.AvgRevenue[d] = domain.Present(dailyRevenue)
		r.AvgDemand[d] = domain.Present(1)
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func withDemand(day domain.Weekday, v float64) recordOpt {
	return func(r *domain.ProductRecord) { r.AvgDemand[day] = domain.Present(v) }
}

func withoutDemandColumn(day domain.Weekday) recordOpt {
	return func(r *domain.ProductRecord) { delete(r.AvgDemand, day) }
}

func withSignals(p, trust, seasonal, elasticity float64) recordOpt {
	return func(r *domain.ProductRecord) {
		r.ABDelta = domain.Present(p)
		r.SellerTrustIncrease = domain.Present(trust)
		r.SeasonalPriceIncrease = domain.Present(seasonal)
		r.PriceElasticity = domain.Present(elasticity)
	}
}

func source(label domain.DatasetGroup, records ...domain.ProductRecord) domain.DatasetSource {
	return domain.DatasetSource{
		Label:   label,
		Columns: domain.ProductRecordColumns(),
		Records: records,
	}
}
