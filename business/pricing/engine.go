package pricing

import (
	"fmt"
	"math"
	"math/big"

	"idealPrice/domain"

	"github.com/shopspring/decimal"
)

// Adjustment holds the full-precision signals and the resulting price.
type Adjustment struct {
	SellersPrice    float64
	DayDelta        float64
	ABDelta         float64
	SellerTrust     float64
	SeasonalDelta   float64
	PriceElasticity float64

	CombinedPerc    float64
	RawIncrease     float64
	ElasticIncrease float64
	IdealPrice      float64
}

// Adjust extracts the pricing signals from the selected row and applies
//
//	ideal = price + (dayDelta + p + trust + seasonal) * price * elasticity
//
// sellers_price and the demand percentage of weekday are required; every
// other signal falls back to 0, and an infinite one is a schema error. No
// floor is applied to the result.
func Adjust(sel Selection, weekday domain.Weekday, seasonal bool) (Adjustment, error) {
	rec := sel.Record

	if !isFinite(rec.SellersPrice) {
		return Adjustment{}, &domain.PricingError{
			Kind:      domain.ErrDataMissing,
			ProductID: rec.ProductID,
			Source:    sel.Source,
			Column:    domain.ColumnSellersPrice,
			Message:   fmt.Sprintf("sellers_price is missing for Product ID %d in %s.", rec.ProductID, sel.Source),
		}
	}

	column := domain.DemandColumn(weekday)
	demand, ok := rec.AvgDemand[weekday]
	if !ok {
		return Adjustment{}, &domain.PricingError{
			Kind:      domain.ErrDataMissing,
			ProductID: rec.ProductID,
			Source:    sel.Source,
			Column:    column,
			Message:   fmt.Sprintf("Column %s not found in %s for product %d.", column, sel.Source, rec.ProductID),
		}
	}
	if !isFinite(demand) {
		return Adjustment{}, &domain.PricingError{
			Kind:      domain.ErrDataMissing,
			ProductID: rec.ProductID,
			Source:    sel.Source,
			Column:    column,
			Message:   fmt.Sprintf("%s is missing for Product ID %d in %s.", column, rec.ProductID, sel.Source),
		}
	}

	type signal struct {
		column string
		value  domain.OptionalFloat
	}
	signals := []signal{
		{domain.ColumnABDelta, rec.ABDelta},
		{domain.ColumnSellerTrustIncrease, rec.SellerTrustIncrease},
		{domain.ColumnPriceElasticity, rec.PriceElasticity},
	}
	if seasonal {
		signals = append(signals, signal{domain.ColumnSeasonalPriceIncrease, rec.SeasonalPriceIncrease})
	}
	for _, sig := range signals {
		if sig.value.Valid && math.IsInf(sig.value.Value, 0) {
			return Adjustment{}, &domain.PricingError{
				Kind:      domain.ErrSchema,
				ProductID: rec.ProductID,
				Source:    sel.Source,
				Column:    sig.column,
				Message:   fmt.Sprintf("%s is not a finite number for Product ID %d in %s.", sig.column, rec.ProductID, sel.Source),
			}
		}
	}

	adj := Adjustment{
		SellersPrice:    rec.SellersPrice.Value,
		DayDelta:        demand.Value - 1,
		ABDelta:         rec.ABDelta.Or(0),
		SellerTrust:     rec.SellerTrustIncrease.Or(0),
		PriceElasticity: rec.PriceElasticity.Or(0),
	}
	if seasonal {
		adj.SeasonalDelta = rec.SeasonalPriceIncrease.Or(0)
	}

	adj.CombinedPerc = adj.DayDelta + adj.ABDelta + adj.SellerTrust + adj.SeasonalDelta
	adj.RawIncrease = adj.CombinedPerc * adj.SellersPrice
	adj.ElasticIncrease = adj.RawIncrease * adj.PriceElasticity
	adj.IdealPrice = adj.SellersPrice + adj.ElasticIncrease

	return adj, nil
}

// Compute prices the selected row and rounds the output fields once, for
// display, to cfg.DisplayPrecision decimals.
func Compute(cfg Config, sel Selection, weekday domain.Weekday, seasonal bool) (domain.PriceResult, error) {
	adj, err := Adjust(sel, weekday, seasonal)
	if err != nil {
		return domain.PriceResult{}, err
	}

	places := cfg.DisplayPrecision
	return domain.PriceResult{
		ProductID:    sel.Record.ProductID,
		SellersPrice: roundDisplay(adj.SellersPrice, places),
		IdealPrice:   roundDisplay(adj.IdealPrice, places),
		AdjustmentParameters: domain.AdjustmentBreakdown{
			DayOfTheWeekDemand: roundDisplay(adj.DayDelta, places),
			SeasonalDemand:     roundDisplay(adj.SeasonalDelta, places),
			Elasticity:         roundDisplay(adj.PriceElasticity, places),
			SellerTrust:        roundDisplay(adj.SellerTrust, places),
			ABTesting:          roundDisplay(adj.ABDelta, places),
		},
		DataSource: sel.Source,
	}, nil
}

// roundDisplay rounds the exact binary value of v half to even, so 2.675
// (stored as 2.67499...) shows as 2.67 and the exact tie 0.125 as 0.12.
func roundDisplay(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return exactDecimal(v).RoundBank(places).InexactFloat64()
}

// exactDecimal returns the decimal equal to v bit for bit.
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}

	// m * 2^-k == m * 5^k * 10^-k
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(exp))
}

func isFinite(v domain.OptionalFloat) bool {
	return v.Valid && !math.IsInf(v.Value, 0)
}
