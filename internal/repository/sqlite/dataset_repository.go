package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"idealPrice/domain"
	"idealPrice/internal/dataset"
)

// DatasetRepository keeps each group in its own table (group_a, group_b)
// whose columns mirror the imported dataset header.
type DatasetRepository struct {
	DB *sql.DB
}

func NewDatasetRepository(db *sql.DB) *DatasetRepository {
	return &DatasetRepository{
		DB: db,
	}
}

func (r *DatasetRepository) LoadDataset(ctx context.Context, group domain.DatasetGroup) (domain.DatasetSource, error) {
	if err := ctx.Err(); err != nil {
		return domain.DatasetSource{}, fmt.Errorf("context error: %w", err)
	}

	if !group.Valid() {
		return domain.DatasetSource{}, fmt.Errorf("unknown dataset group %q", group)
	}

	rows, err := r.DB.QueryContext(ctx, "SELECT * FROM "+quoteIdent(string(group))+" ORDER BY rowid")
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return domain.DatasetSource{}, &domain.PricingError{
				Kind:    domain.ErrDataMissing,
				Source:  group,
				Message: "Dataset table not found.",
				Err:     err,
			}
		}
		return domain.DatasetSource{}, fmt.Errorf("failed to query dataset %s: %w", group, err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return domain.DatasetSource{}, fmt.Errorf("failed to read dataset columns: %w", err)
	}

	table := dataset.Table{Headers: headers}
	values := make([]sql.NullString, len(headers))
	dest := make([]any, len(headers))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return domain.DatasetSource{}, fmt.Errorf("failed to scan dataset row: %w", err)
		}

		row := make([]string, len(values))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return domain.DatasetSource{}, fmt.Errorf("failed to iterate dataset rows: %w", err)
	}

	return dataset.ParseTable(group, table)
}

// ImportTable replaces the table of group with t. Empty cells become NULL.
func (r *DatasetRepository) ImportTable(ctx context.Context, group domain.DatasetGroup, t dataset.Table) error {
	if !group.Valid() {
		return fmt.Errorf("unknown dataset group %q", group)
	}
	if len(t.Headers) == 0 {
		return fmt.Errorf("dataset %s has no columns", group)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	name := quoteIdent(string(group))
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
		return fmt.Errorf("failed to drop %s: %w", group, err)
	}

	defs := make([]string, len(t.Headers))
	marks := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		typ := "REAL"
		if h == domain.ColumnProductID {
			typ = "INTEGER"
		}
		defs[i] = quoteIdent(h) + " " + typ
		marks[i] = "?"
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("failed to create %s: %w", group, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", name, strings.Join(marks, ", ")))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Headers))
	for n, row := range t.Rows {
		for i := range args {
			args[i] = nil
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				args[i] = row[i]
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row %d into %s: %w", n+1, group, err)
		}
	}

	return tx.Commit()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
