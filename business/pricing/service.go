package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"idealPrice/domain"
	"idealPrice/pkg/logger"
	"idealPrice/pkg/metrics"
)

// DatasetRepository contract interface
type DatasetRepository interface {
	LoadDataset(ctx context.Context, group domain.DatasetGroup) (domain.DatasetSource, error)
}

type PricingService struct {
	datasetRepo DatasetRepository
	cfg         Config
	now         func() time.Time
}

func NewPricingService(datasetRepo DatasetRepository, cfg Config) *PricingService {
	return &PricingService{
		datasetRepo: datasetRepo,
		cfg:         cfg,
		now:         time.Now,
	}
}

// CalculatePrice resolves the authoritative row for q.ProductID across both
// experiment arms and prices it for the weekday of q.Date.
func (s *PricingService) CalculatePrice(ctx context.Context, q domain.PriceQuery) (result *domain.PriceResult, err error) {
	start := time.Now()
	defer func() {
		metrics.PricingCalculationDuration.Observe(time.Since(start).Seconds())
		metrics.PricingCalculationsTotal.WithLabelValues(domain.KindName(err)).Inc()
	}()

	if err := ctx.Err(); err != nil {
		logger.Error("context error when calculating price", "product_id", q.ProductID, "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	date := q.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	// the date is validated before any dataset is touched
	weekday, err := WeekdayFromDate(date)
	if err != nil {
		logger.Warn("invalid calculation date", "product_id", q.ProductID, "date", q.Date)
		return nil, err
	}

	sourceA, err := s.loadDataset(ctx, domain.GroupA)
	if err != nil {
		return nil, err
	}

	sourceB, err := s.loadDataset(ctx, domain.GroupB)
	if err != nil {
		return nil, err
	}

	sel, err := Resolve(q.ProductID, sourceA, sourceB)
	if err != nil {
		logger.Info("product not found in any dataset", "product_id", q.ProductID)
		return nil, err
	}

	price, err := Compute(s.cfg, sel, weekday, q.Seasonal)
	if err != nil {
		logger.Error("failed to compute ideal price",
			"product_id", q.ProductID,
			"source", sel.Source,
			"weekday", weekday,
			"error", err,
		)
		return nil, err
	}

	metrics.PricingSourceSelectedTotal.WithLabelValues(string(sel.Source)).Inc()
	logger.Debug("ideal price calculated",
		"product_id", q.ProductID,
		"source", sel.Source,
		"weekday", weekday,
		"seasonal", q.Seasonal,
		"ideal_price", price.IdealPrice,
	)

	return &price, nil
}

// DatasetSummary describes one experiment arm as currently loaded.
func (s *PricingService) DatasetSummary(ctx context.Context, group domain.DatasetGroup) (*domain.DatasetSummary, error) {
	if !group.Valid() {
		return nil, fmt.Errorf("unknown dataset group %q", group)
	}

	src, err := s.loadDataset(ctx, group)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(src.Records))
	for _, r := range src.Records {
		ids = append(ids, r.ProductID)
	}

	return &domain.DatasetSummary{
		Label:    src.Label,
		Rows:     len(src.Records),
		Columns:  src.Columns,
		Products: ids,
	}, nil
}

func (s *PricingService) loadDataset(ctx context.Context, group domain.DatasetGroup) (domain.DatasetSource, error) {
	start := time.Now()
	src, err := s.datasetRepo.LoadDataset(ctx, group)
	metrics.DatasetLoadDuration.WithLabelValues(string(group)).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error("failed to load dataset", "source", group, "error", err)

		var perr *domain.PricingError
		if errors.As(err, &perr) {
			return domain.DatasetSource{}, err
		}
		return domain.DatasetSource{}, &domain.PricingError{
			Kind:    domain.ErrDataMissing,
			Source:  group,
			Message: fmt.Sprintf("Dataset %s could not be loaded.", group),
			Err:     err,
		}
	}

	if src.Label == "" {
		src.Label = group
	}

	return src, nil
}
