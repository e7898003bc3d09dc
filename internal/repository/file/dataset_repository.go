package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"idealPrice/domain"
	"idealPrice/internal/dataset"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// DatasetRepository reads <dir>/<group>.<format> on every call.
type DatasetRepository struct {
	dir    string
	format string
}

func NewDatasetRepository(dir, format string) *DatasetRepository {
	if format == "" {
		format = FormatCSV
	}

	return &DatasetRepository{
		dir:    dir,
		format: format,
	}
}

func (r *DatasetRepository) Path(group domain.DatasetGroup) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s.%s", group, r.format))
}

func (r *DatasetRepository) LoadDataset(ctx context.Context, group domain.DatasetGroup) (domain.DatasetSource, error) {
	if err := ctx.Err(); err != nil {
		return domain.DatasetSource{}, fmt.Errorf("context error: %w", err)
	}

	if !group.Valid() {
		return domain.DatasetSource{}, fmt.Errorf("unknown dataset group %q", group)
	}

	path := r.Path(group)

	var (
		table dataset.Table
		err   error
	)
	switch r.format {
	case FormatCSV:
		table, err = dataset.ReadCSVFile(path)
	case FormatXLSX:
		table, err = dataset.ReadXLSXFile(path)
	default:
		return domain.DatasetSource{}, fmt.Errorf("unsupported dataset format %q", r.format)
	}

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DatasetSource{}, &domain.PricingError{
				Kind:    domain.ErrDataMissing,
				Source:  group,
				Message: "Dataset file not found.",
				Err:     err,
			}
		}
		return domain.DatasetSource{}, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	return dataset.ParseTable(group, table)
}
