// Command dataset-generator writes synthetic group_a/group_b pricing datasets.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"idealPrice/domain"
	"idealPrice/internal/dataset"
	psqlRepo "idealPrice/internal/repository/postgres"
	sqliteRepo "idealPrice/internal/repository/sqlite"
	"idealPrice/pkg/config"
	"idealPrice/pkg/database"
	"idealPrice/pkg/logger"
)

type options struct {
	Products   int
	OutDir     string
	Format     string
	Seed       int64
	SQLitePath string
	Postgres   bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("dataset-generator", flag.ContinueOnError)
	fs.IntVar(&opts.Products, "products", 50, "number of products per group")
	fs.StringVar(&opts.OutDir, "out", "demo_dataset", "output directory")
	fs.StringVar(&opts.Format, "format", config.FormatCSV, "file format: csv or xlsx")
	fs.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 uses the current time")
	fs.StringVar(&opts.SQLitePath, "sqlite", "", "also import both groups into this sqlite file")
	fs.BoolVar(&opts.Postgres, "postgres", false, "also import both groups into product_records (DB_* env)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.Products <= 0 {
		return options{}, fmt.Errorf("products must be positive, got %d", opts.Products)
	}
	if opts.Format != config.FormatCSV && opts.Format != config.FormatXLSX {
		return options{}, fmt.Errorf("unsupported format %q", opts.Format)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	return opts, nil
}

// generate writes both groups and returns their tables keyed by group.
func generate(opts options) (map[domain.DatasetGroup]dataset.Table, error) {
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.OutDir, err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	tables := make(map[domain.DatasetGroup]dataset.Table, 2)

	for _, group := range []domain.DatasetGroup{domain.GroupA, domain.GroupB} {
		table := dataset.Generate(rng, opts.Products)
		path := filepath.Join(opts.OutDir, string(group)+"."+opts.Format)

		write := dataset.WriteCSVFile
		if opts.Format == config.FormatXLSX {
			write = dataset.WriteXLSXFile
		}
		if err := write(path, table); err != nil {
			return nil, err
		}

		logger.Info("Dataset written", "group", group, "path", path, "rows", len(table.Rows))
		tables[group] = table
	}

	return tables, nil
}

func importSQLite(ctx context.Context, path string, tables map[domain.DatasetGroup]dataset.Table) error {
	db, err := database.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := sqliteRepo.NewDatasetRepository(db)
	for group, table := range tables {
		if err := repo.ImportTable(ctx, group, table); err != nil {
			return err
		}
		logger.Info("Dataset imported into sqlite", "group", group, "path", path)
	}

	return nil
}

func importPostgres(ctx context.Context, tables map[domain.DatasetGroup]dataset.Table) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		return err
	}
	defer database.ClosePostgres(db)

	repo := psqlRepo.NewProductRecordRepository(db)
	if err := repo.AutoMigrate(ctx); err != nil {
		return err
	}

	for group, table := range tables {
		src, err := dataset.ParseTable(group, table)
		if err != nil {
			return err
		}
		if err := repo.ReplaceGroup(ctx, group, src.Records); err != nil {
			return err
		}
		logger.Info("Dataset imported into postgres", "group", group, "rows", len(src.Records))
	}

	return nil
}

func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	tables, err := generate(opts)
	if err != nil {
		return err
	}

	if opts.SQLitePath != "" {
		if err := importSQLite(ctx, opts.SQLitePath, tables); err != nil {
			return err
		}
	}

	if opts.Postgres {
		if err := importPostgres(ctx, tables); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	logger.Init(os.Getenv("APP_ENV"))

	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("dataset-generator: %v", err)
	}
}
