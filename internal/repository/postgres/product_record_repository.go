package postgres

import (
	"context"
	"fmt"

	"idealPrice/domain"

	"gorm.io/gorm"
)

type ProductRecordRepository struct {
	DB *gorm.DB
}

func NewProductRecordRepository(db *gorm.DB) *ProductRecordRepository {
	return &ProductRecordRepository{
		DB: db,
	}
}

func (r *ProductRecordRepository) AutoMigrate(ctx context.Context) error {
	if err := r.DB.WithContext(ctx).AutoMigrate(&domain.ProductRecordRow{}); err != nil {
		return fmt.Errorf("failed to migrate product_records: %w", err)
	}

	return nil
}

func (r *ProductRecordRepository) LoadDataset(ctx context.Context, group domain.DatasetGroup) (domain.DatasetSource, error) {
	if err := ctx.Err(); err != nil {
		return domain.DatasetSource{}, fmt.Errorf("context error: %w", err)
	}

	if !group.Valid() {
		return domain.DatasetSource{}, fmt.Errorf("unknown dataset group %q", group)
	}

	var rows []domain.ProductRecordRow
	err := r.DB.WithContext(ctx).
		Where("group_name = ?", string(group)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return domain.DatasetSource{}, fmt.Errorf("failed to find product records: %w", err)
	}

	return sourceFromRows(group, rows), nil
}

// ReplaceGroup swaps every row of group for records in one transaction.
func (r *ProductRecordRepository) ReplaceGroup(ctx context.Context, group domain.DatasetGroup, records []domain.ProductRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if !group.Valid() {
		return fmt.Errorf("unknown dataset group %q", group)
	}

	rows := make([]domain.ProductRecordRow, len(records))
	for i, rec := range records {
		rows[i] = rowFromRecord(group, rec)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_name = ?", string(group)).Delete(&domain.ProductRecordRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", group, err)
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("failed to insert %s: %w", group, err)
		}

		return nil
	})
}

func sourceFromRows(group domain.DatasetGroup, rows []domain.ProductRecordRow) domain.DatasetSource {
	records := make([]domain.ProductRecord, len(rows))
	for i, row := range rows {
		records[i] = row.Record()
	}

	return domain.DatasetSource{
		Label:   group,
		Columns: domain.ProductRecordColumns(),
		Records: records,
	}
}

func rowFromRecord(group domain.DatasetGroup, rec domain.ProductRecord) domain.ProductRecordRow {
	rev := func(d domain.Weekday) *float64 { return ptr(rec.AvgRevenue[d]) }
	dem := func(d domain.Weekday) *float64 { return ptr(rec.AvgDemand[d]) }

	return domain.ProductRecordRow{
		GroupName:    string(group),
		ProductID:    rec.ProductID,
		SellersPrice: ptr(rec.SellersPrice),

		AvgRevenueMonday:    rev(domain.Monday),
		AvgRevenueTuesday:   rev(domain.Tuesday),
		AvgRevenueWednesday: rev(domain.Wednesday),
		AvgRevenueThursday:  rev(domain.Thursday),
		AvgRevenueFriday:    rev(domain.Friday),
		AvgRevenueSaturday:  rev(domain.Saturday),
		AvgRevenueSunday:    rev(domain.Sunday),

		AvgDemandMondayPerc:    dem(domain.Monday),
		AvgDemandTuesdayPerc:   dem(domain.Tuesday),
		AvgDemandWednesdayPerc: dem(domain.Wednesday),
		AvgDemandThursdayPerc:  dem(domain.Thursday),
		AvgDemandFridayPerc:    dem(domain.Friday),
		AvgDemandSaturdayPerc:  dem(domain.Saturday),
		AvgDemandSundayPerc:    dem(domain.Sunday),

		SeasonalPriceIncreasePerc: ptr(rec.SeasonalPriceIncrease),
		SellerTrustIncreasePerc:   ptr(rec.SellerTrustIncrease),
		PriceElasticity:           ptr(rec.PriceElasticity),
		P:                         ptr(rec.ABDelta),
	}
}

func ptr(o domain.OptionalFloat) *float64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
