package pricing

import (
	"fmt"

	"idealPrice/domain"
)

// Selection is the single dataset row chosen to price a product.
type Selection struct {
	Source domain.DatasetGroup
	Record domain.ProductRecord
}

// TotalWeeklyRevenue sums the seven avg_revenue columns, counting empty
// cells as 0. A record whose source lacks any revenue column totals 0.
func TotalWeeklyRevenue(record domain.ProductRecord) float64 {
	for _, day := range domain.Weekdays {
		if _, ok := record.AvgRevenue[day]; !ok {
			return 0
		}
	}

	var total float64
	for _, day := range domain.Weekdays {
		total += record.AvgRevenue[day].Or(0)
	}

	return total
}

// Resolve picks the row of whichever source has the higher weekly revenue for
// productID. Ties go to sourceA. When the preferred source has no row the
// other source is used; fields are never merged across sources.
func Resolve(productID int64, sourceA, sourceB domain.DatasetSource) (Selection, error) {
	recA, okA := sourceA.FindRecord(productID)
	recB, okB := sourceB.FindRecord(productID)

	if !okA && !okB {
		return Selection{}, &domain.PricingError{
			Kind:      domain.ErrProductNotFound,
			ProductID: productID,
			Message:   fmt.Sprintf("Product ID %d not found in any dataset.", productID),
		}
	}

	var totalA, totalB float64
	if okA {
		totalA = TotalWeeklyRevenue(recA)
	}
	if okB {
		totalB = TotalWeeklyRevenue(recB)
	}

	a := Selection{Source: sourceA.Label, Record: recA}
	b := Selection{Source: sourceB.Label, Record: recB}

	if totalA >= totalB {
		if okA {
			return a, nil
		}
		return b, nil
	}

	if okB {
		return b, nil
	}
	return a, nil
}
