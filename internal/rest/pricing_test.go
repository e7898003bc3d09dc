package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"idealPrice/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePricingService struct {
	gotQuery domain.PriceQuery
	calls    int
	result   *domain.PriceResult
	err      error
}

func (f *fakePricingService) CalculatePrice(ctx context.Context, q domain.PriceQuery) (*domain.PriceResult, error) {
	f.calls++
	f.gotQuery = q
	return f.result, f.err
}

func newPricingServer(svc PricingService) *echo.Echo {
	e := echo.New()
	h := NewPricingHandler(svc, validator.New(), time.Second)
	e.GET("/api/calculate_price/:product_id", h.CalculatePrice)
	return e
}

func TestCalculatePrice_OK(t *testing.T) {
	svc := &fakePricingService{result: &domain.PriceResult{
		ProductID:    3,
		SellersPrice: 10,
		IdealPrice:   11.4,
		AdjustmentParameters: domain.AdjustmentBreakdown{
			DayOfTheWeekDemand: 0.2,
			Elasticity:         0.5,
			SellerTrust:        0.1,
			ABTesting:          -0.02,
		},
		DataSource: domain.GroupA,
	}}
	e := newPricingServer(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calculate_price/3?date=2024-01-01&seasonal=TRUE", nil)
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PriceQuery{ProductID: 3, Date: "2024-01-01", Seasonal: true}, svc.gotQuery)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 11.4, body["ideal_price"])
	assert.Equal(t, float64(3), body["product_id"])
	assert.Equal(t, "group_a", body["data_source"])
	params := body["adjustment_parameters"].(map[string]any)
	assert.Equal(t, 0.2, params["day_of_the_week_demand"])
	assert.Equal(t, -0.02, params["a_b_testing"])
}

func TestCalculatePrice_SeasonalParsing(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"?seasonal=true", true},
		{"?seasonal=True", true},
		{"?seasonal=1", false},
		{"?seasonal=yes", false},
		{"?seasonal=false", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := &fakePricingService{result: &domain.PriceResult{}}
			rec := httptest.NewRecorder()
			newPricingServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calculate_price/1"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, svc.gotQuery.Seasonal)
			assert.Equal(t, "", svc.gotQuery.Date)
		})
	}
}

func TestCalculatePrice_BadProductID(t *testing.T) {
	for _, id := range []string{"abc", "-4", "1.5", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			svc := &fakePricingService{}
			rec := httptest.NewRecorder()
			newPricingServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calculate_price/"+id, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"Product ID must be a non-negative integer."}`, rec.Body.String())
			assert.Equal(t, 0, svc.calls)
		})
	}
}

func TestCalculatePrice_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid date",
			err:        &domain.PricingError{Kind: domain.ErrInvalidDate, Message: "Invalid date format. Please use YYYY-MM-DD."},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid date format. Please use YYYY-MM-DD."}`,
		},
		{
			name:       "not found",
			err:        &domain.PricingError{Kind: domain.ErrProductNotFound, ProductID: 9, Message: "Product ID 9 not found in any dataset."},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Product ID 9 not found in any dataset."}`,
		},
		{
			name:       "data missing",
			err:        &domain.PricingError{Kind: domain.ErrDataMissing, Message: "sellers_price is missing for Product ID 9 in group_a."},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"sellers_price is missing for Product ID 9 in group_a."}`,
		},
		{
			name:       "schema",
			err:        &domain.PricingError{Kind: domain.ErrSchema, Message: "Missing expected column 'product_id' in dataset 'group_b'."},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Missing expected column 'product_id' in dataset 'group_b'."}`,
		},
		{
			name:       "timeout",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `{"error":"Price calculation timed out."}`,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePricingService{err: tt.err}
			rec := httptest.NewRecorder()
			newPricingServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calculate_price/9", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
