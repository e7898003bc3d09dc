package domain

type PriceQuery struct {
	ProductID int64
	// Date is an ISO YYYY-MM-DD string; empty means the caller's current date.
	Date     string
	Seasonal bool
}

type AdjustmentBreakdown struct {
	DayOfTheWeekDemand float64 `json:"day_of_the_week_demand"`
	SeasonalDemand     float64 `json:"seasonal_demand"`
	Elasticity         float64 `json:"elasticity"`
	SellerTrust        float64 `json:"seller_trust"`
	ABTesting          float64 `json:"a_b_testing"`
}

type PriceResult struct {
	ProductID            int64               `json:"product_id"`
	SellersPrice         float64             `json:"sellers_price"`
	IdealPrice           float64             `json:"ideal_price"`
	AdjustmentParameters AdjustmentBreakdown `json:"adjustment_parameters"`
	DataSource           DatasetGroup        `json:"data_source"`
}
