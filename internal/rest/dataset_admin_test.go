package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"idealPrice/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fakeSummaryService struct {
	summary *domain.DatasetSummary
	err     error
}

func (f *fakeSummaryService) DatasetSummary(ctx context.Context, group domain.DatasetGroup) (*domain.DatasetSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := *f.summary
	s.Label = group
	return &s, nil
}

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(ctx context.Context) error {
	f.calls++
	return f.err
}

func newAdminServer(svc DatasetSummaryService, cache DatasetCacheInvalidator) *echo.Echo {
	e := echo.New()
	h := NewDatasetAdminHandler(svc, cache, time.Second)
	e.GET("/datasets/:group", h.GetDatasetSummary)
	e.DELETE("/datasets/cache", h.InvalidateCache)
	return e
}

func TestGetDatasetSummary(t *testing.T) {
	svc := &fakeSummaryService{summary: &domain.DatasetSummary{Rows: 2, Columns: []string{"product_id"}, Products: []int64{1, 2}}}

	tests := []struct {
		name       string
		svc        *fakeSummaryService
		path       string
		wantStatus int
		wantInBody string
	}{
		{name: "ok", svc: svc, path: "/datasets/group_b", wantStatus: http.StatusOK, wantInBody: `"product_ids":[1,2]`},
		{name: "unknown group", svc: svc, path: "/datasets/group_c", wantStatus: http.StatusBadRequest, wantInBody: "group must be"},
		{
			name:       "load failure",
			svc:        &fakeSummaryService{err: &domain.PricingError{Kind: domain.ErrDataMissing, Message: "Dataset file not found."}},
			path:       "/datasets/group_a",
			wantStatus: http.StatusInternalServerError,
			wantInBody: "Dataset file not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newAdminServer(tt.svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantInBody)
		})
	}
}

func TestInvalidateCache(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newAdminServer(&fakeSummaryService{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/datasets/cache", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		cache := &fakeInvalidator{}
		rec := httptest.NewRecorder()
		newAdminServer(&fakeSummaryService{}, cache).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/datasets/cache", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, cache.calls)
	})

	t.Run("redis error", func(t *testing.T) {
		cache := &fakeInvalidator{err: errors.New("connection refused")}
		rec := httptest.NewRecorder()
		newAdminServer(&fakeSummaryService{}, cache).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/datasets/cache", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"failed to invalidate dataset cache"}`, rec.Body.String())
	})
}
