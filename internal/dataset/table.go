// Package dataset turns tabular pricing data (CSV, XLSX, SQL result sets)
// into typed domain records.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"idealPrice/domain"
)

// Table is a header plus string rows. Short rows are padded with empty cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// missingMarkers are the cell spellings read as "no value", on top of the
// empty string.
var missingMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

func isMissing(cell string) bool {
	if cell == "" {
		return true
	}
	_, ok := missingMarkers[cell]
	return ok
}

// ParseTable converts t into the records of one dataset source. Columns
// other than the known numeric ones are carried in Columns and otherwise
// ignored. Rows with an empty product_id cannot be looked up and are dropped.
func ParseTable(group domain.DatasetGroup, t Table) (domain.DatasetSource, error) {
	index := make(map[string]int, len(t.Headers))
	columns := make([]string, 0, len(t.Headers))
	for i, h := range t.Headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; dup {
			continue
		}
		index[h] = i
		columns = append(columns, h)
	}

	src := domain.DatasetSource{Label: group, Columns: columns}

	idIdx, ok := index[domain.ColumnProductID]
	if !ok {
		return src, &domain.PricingError{
			Kind:    domain.ErrSchema,
			Source:  group,
			Column:  domain.ColumnProductID,
			Message: fmt.Sprintf("Missing expected column '%s' in dataset '%s'.", domain.ColumnProductID, group),
		}
	}

	p := rowParser{group: group, index: index}
	src.Records = make([]domain.ProductRecord, 0, len(t.Rows))
	for n, row := range t.Rows {
		p.row, p.line = row, n+1

		idCell := p.cell(idIdx)
		if isMissing(idCell) {
			continue
		}
		id, err := parseProductID(idCell)
		if err != nil {
			return src, p.schemaError(domain.ColumnProductID, idCell)
		}

		rec := domain.ProductRecord{
			ProductID:  id,
			AvgRevenue: make(map[domain.Weekday]domain.OptionalFloat, len(domain.Weekdays)),
			AvgDemand:  make(map[domain.Weekday]domain.OptionalFloat, len(domain.Weekdays)),
		}

		scalars := []struct {
			column string
			dst    *domain.OptionalFloat
		}{
			{domain.ColumnSellersPrice, &rec.SellersPrice},
			{domain.ColumnABDelta, &rec.ABDelta},
			{domain.ColumnSellerTrustIncrease, &rec.SellerTrustIncrease},
			{domain.ColumnSeasonalPriceIncrease, &rec.SeasonalPriceIncrease},
			{domain.ColumnPriceElasticity, &rec.PriceElasticity},
		}
		for _, s := range scalars {
			v, _, err := p.float(s.column)
			if err != nil {
				return src, err
			}
			*s.dst = v
		}

		for _, day := range domain.Weekdays {
			if v, ok, err := p.float(domain.RevenueColumn(day)); err != nil {
				return src, err
			} else if ok {
				rec.AvgRevenue[day] = v
			}
			if v, ok, err := p.float(domain.DemandColumn(day)); err != nil {
				return src, err
			} else if ok {
				rec.AvgDemand[day] = v
			}
		}

		src.Records = append(src.Records, rec)
	}

	return src, nil
}

type rowParser struct {
	group domain.DatasetGroup
	index map[string]int
	row   []string
	line  int
}

func (p *rowParser) cell(i int) string {
	if i >= len(p.row) {
		return ""
	}
	return strings.TrimSpace(p.row[i])
}

// float reads column from the current row. ok reports whether the table
// has the column at all.
func (p *rowParser) float(column string) (v domain.OptionalFloat, ok bool, err error) {
	i, ok := p.index[column]
	if !ok {
		return domain.OptionalFloat{}, false, nil
	}

	cell := p.cell(i)
	if isMissing(cell) {
		return domain.OptionalFloat{}, true, nil
	}

	f, perr := strconv.ParseFloat(cell, 64)
	if perr != nil {
		return domain.OptionalFloat{}, true, p.schemaError(column, cell)
	}

	return domain.Present(f), true, nil
}

func (p *rowParser) schemaError(column, cell string) error {
	return &domain.PricingError{
		Kind:    domain.ErrSchema,
		Source:  p.group,
		Column:  column,
		Message: fmt.Sprintf("Invalid value %q in column '%s' (row %d) of dataset '%s'.", cell, column, p.line, p.group),
	}
}

// parseProductID accepts integral floats ("3.0") the way a numeric
// comparison against the id would.
func parseProductID(cell string) (int64, error) {
	if id, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("product id %q is not an integer", cell)
	}

	return int64(f), nil
}
