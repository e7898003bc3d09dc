package dataset

import (
	"math/rand"
	"strconv"

	"idealPrice/domain"

	"github.com/shopspring/decimal"
)

type uniform struct {
	min, max float64
}

// Demo distributions for synthetic datasets.
var (
	sellersPriceRange = uniform{0, 20}
	revenueRange      = uniform{50, 1000}
	demandRange       = uniform{0.5, 1.5}
	seasonalRange     = uniform{0, 0.25}
	trustRange        = uniform{0, 0.15}
	elasticityRange   = uniform{0, 1}
	abDeltaRange      = uniform{-0.05, 0.05}
)

// DatasetHeaders is the column order of generated datasets.
func DatasetHeaders() []string {
	return domain.ProductRecordColumns()
}

// Generate builds a demo dataset with product ids 1..products. Every value is
// rounded to two decimals.
func Generate(rng *rand.Rand, products int) Table {
	t := Table{Headers: DatasetHeaders()}

	for id := 1; id <= products; id++ {
		row := []string{strconv.Itoa(id), sample(rng, sellersPriceRange)}
		for range domain.Weekdays {
			row = append(row, sample(rng, revenueRange))
		}
		for range domain.Weekdays {
			row = append(row, sample(rng, demandRange))
		}
		row = append(row,
			sample(rng, seasonalRange),
			sample(rng, trustRange),
			sample(rng, elasticityRange),
			sample(rng, abDeltaRange),
		)
		t.Rows = append(t.Rows, row)
	}

	return t
}

func sample(rng *rand.Rand, u uniform) string {
	v := u.min + rng.Float64()*(u.max-u.min)
	return decimal.NewFromFloat(v).Round(2).String()
}
