package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the weekday tokens in dataset column order.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf maps a calendar date to its lowercase English weekday token.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday starts at Sunday
	return Weekdays[(int(t.Weekday())+6)%7]
}

const (
	ColumnProductID             = "product_id"
	ColumnSellersPrice          = "sellers_price"
	ColumnABDelta               = "p"
	ColumnSellerTrustIncrease   = "seller_trust_increase_perc"
	ColumnSeasonalPriceIncrease = "seasonal_price_increase_perc"
	ColumnPriceElasticity       = "price_elasticity"
)

func RevenueColumn(day Weekday) string {
	return "avg_revenue_" + string(day)
}

func DemandColumn(day Weekday) string {
	return "avg_demand_" + string(day) + "_perc"
}

// OptionalFloat is a dataset cell that may be absent. NaN is never Valid.
type OptionalFloat struct {
	Value float64
	Valid bool
}

func Present(v float64) OptionalFloat {
	if math.IsNaN(v) {
		return OptionalFloat{}
	}
	return OptionalFloat{Value: v, Valid: true}
}

func FromPtr(v *float64) OptionalFloat {
	if v == nil {
		return OptionalFloat{}
	}
	return Present(*v)
}

// Or returns the value, or def when the cell is absent.
func (o OptionalFloat) Or(def float64) float64 {
	if !o.Valid {
		return def
	}
	return o.Value
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid || math.IsInf(o.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = OptionalFloat{}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Present(v)
	return nil
}

// ProductRecord is one row of a pricing dataset.
//
// AvgRevenue and AvgDemand only hold keys for the weekday columns the source
// actually carries; a key with an invalid value means the column exists but
// the cell is empty.
type ProductRecord struct {
	ProductID             int64                     `json:"product_id"`
	SellersPrice          OptionalFloat             `json:"sellers_price"`
	AvgRevenue            map[Weekday]OptionalFloat `json:"avg_revenue"`
	AvgDemand             map[Weekday]OptionalFloat `json:"avg_demand_perc"`
	ABDelta               OptionalFloat             `json:"p"`
	SellerTrustIncrease   OptionalFloat             `json:"seller_trust_increase_perc"`
	SeasonalPriceIncrease OptionalFloat             `json:"seasonal_price_increase_perc"`
	PriceElasticity       OptionalFloat             `json:"price_elasticity"`
}

type DatasetGroup string

const (
	GroupA DatasetGroup = "group_a"
	GroupB DatasetGroup = "group_b"
)

func (g DatasetGroup) Valid() bool {
	return g == GroupA || g == GroupB
}

// DatasetSource is a read-only snapshot of one experiment arm.
type DatasetSource struct {
	Label   DatasetGroup    `json:"label"`
	Columns []string        `json:"columns"`
	Records []ProductRecord `json:"records"`
}

func (s DatasetSource) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// FindRecord returns the first record for productID.
func (s DatasetSource) FindRecord(productID int64) (ProductRecord, bool) {
	for _, r := range s.Records {
		if r.ProductID == productID {
			return r, true
		}
	}
	return ProductRecord{}, false
}

type DatasetSummary struct {
	Label    DatasetGroup `json:"label"`
	Rows     int          `json:"rows"`
	Columns  []string     `json:"columns"`
	Products []int64      `json:"product_ids"`
}

// ProductRecordRow is the relational form of a ProductRecord.
//
// CREATE TABLE public.product_records (
//     id                            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     group_name                    TEXT NOT NULL,
//     product_id                    BIGINT NOT NULL,
//     sellers_price                 NUMERIC,
//     avg_revenue_monday ... sunday NUMERIC,
//     avg_demand_monday_perc ...    NUMERIC,
//     seasonal_price_increase_perc  NUMERIC,
//     seller_trust_increase_perc    NUMERIC,
//     price_elasticity              NUMERIC,
//     p                             NUMERIC
// );
type ProductRecordRow struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	GroupName string `gorm:"column:group_name;type:text;not null;index"`
	ProductID int64  `gorm:"column:product_id;not null;index"`

	SellersPrice *float64 `gorm:"column:sellers_price;type:numeric"`

	AvgRevenueMonday    *float64 `gorm:"column:avg_revenue_monday;type:numeric"`
	AvgRevenueTuesday   *float64 `gorm:"column:avg_revenue_tuesday;type:numeric"`
	AvgRevenueWednesday *float64 `gorm:"column:avg_revenue_wednesday;type:numeric"`
	AvgRevenueThursday  *float64 `gorm:"column:avg_revenue_thursday;type:numeric"`
	AvgRevenueFriday    *float64 `gorm:"column:avg_revenue_friday;type:numeric"`
	AvgRevenueSaturday  *float64 `gorm:"column:avg_revenue_saturday;type:numeric"`
	AvgRevenueSunday    *float64 `gorm:"column:avg_revenue_sunday;type:numeric"`

	AvgDemandMondayPerc    *float64 `gorm:"column:avg_demand_monday_perc;type:numeric"`
	AvgDemandTuesdayPerc   *float64 `gorm:"column:avg_demand_tuesday_perc;type:numeric"`
	AvgDemandWednesdayPerc *float64 `gorm:"column:avg_demand_wednesday_perc;type:numeric"`
	AvgDemandThursdayPerc  *float64 `gorm:"column:avg_demand_thursday_perc;type:numeric"`
	AvgDemandFridayPerc    *float64 `gorm:"column:avg_demand_friday_perc;type:numeric"`
	AvgDemandSaturdayPerc  *float64 `gorm:"column:avg_demand_saturday_perc;type:numeric"`
	AvgDemandSundayPerc    *float64 `gorm:"column:avg_demand_sunday_perc;type:numeric"`

	SeasonalPriceIncreasePerc *float64 `gorm:"column:seasonal_price_increase_perc;type:numeric"`
	SellerTrustIncreasePerc   *float64 `gorm:"column:seller_trust_increase_perc;type:numeric"`
	PriceElasticity           *float64 `gorm:"column:price_elasticity;type:numeric"`
	P                         *float64 `gorm:"column:p;type:numeric"`
}

func (ProductRecordRow) TableName() string {
	return "product_records"
}

// ProductRecordColumns is the column set every product_records group carries.
func ProductRecordColumns() []string {
	cols := []string{ColumnProductID, ColumnSellersPrice}
	for _, d := range Weekdays {
		cols = append(cols, RevenueColumn(d))
	}
	for _, d := range Weekdays {
		cols = append(cols, DemandColumn(d))
	}
	return append(cols,
		ColumnSeasonalPriceIncrease,
		ColumnSellerTrustIncrease,
		ColumnPriceElasticity,
		ColumnABDelta,
	)
}

func (r ProductRecordRow) Record() ProductRecord {
	revenue := [7]*float64{
		r.AvgRevenueMonday, r.AvgRevenueTuesday, r.AvgRevenueWednesday, r.AvgRevenueThursday,
		r.AvgRevenueFriday, r.AvgRevenueSaturday, r.AvgRevenueSunday,
	}
	demand := [7]*float64{
		r.AvgDemandMondayPerc, r.AvgDemandTuesdayPerc, r.AvgDemandWednesdayPerc, r.AvgDemandThursdayPerc,
		r.AvgDemandFridayPerc, r.AvgDemandSaturdayPerc, r.AvgDemandSundayPerc,
	}

	rec := ProductRecord{
		ProductID:             r.ProductID,
		SellersPrice:          FromPtr(r.SellersPrice),
		AvgRevenue:            make(map[Weekday]OptionalFloat, len(Weekdays)),
		AvgDemand:             make(map[Weekday]OptionalFloat, len(Weekdays)),
		ABDelta:               FromPtr(r.P),
		SellerTrustIncrease:   FromPtr(r.SellerTrustIncreasePerc),
		SeasonalPriceIncrease: FromPtr(r.SeasonalPriceIncreasePerc),
		PriceElasticity:       FromPtr(r.PriceElasticity),
	}
	for i, d := range Weekdays {
		rec.AvgRevenue[d] = FromPtr(revenue[i])
		rec.AvgDemand[d] = FromPtr(demand[i])
	}

	return rec
}
