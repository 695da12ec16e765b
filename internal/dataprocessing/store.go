package dataprocessing

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"irevolution/internal/config"
	apperrors "irevolution/internal/errors"
)

// Store holds the four tables the dashboard is computed from. It is built
// once at startup and only read afterwards.
type Store struct {
	Products    *Table
	Competitors *Table
	Revenue     *Table
	Penetration *Table
}

// Tables returns the loaded tables in a stable order
func (s *Store) Tables() []*Table {
	return []*Table{s.Products, s.Competitors, s.Revenue, s.Penetration}
}

type tableBinding struct {
	sheet    string
	required []string
	target   **Table
}

// LoadStore reads the product, competitor, revenue and penetration tables
// exported for the configured sheets. All four are loaded concurrently and
// bound against their required columns; the first failure is returned as a
// STARTUP_LOAD error.
func LoadStore(ctx context.Context, paths *config.Paths, sheets config.DatasetConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "dataset_loader"))

	store := &Store{}
	bindings := []tableBinding{
		{sheets.ProductsSheet, productsSchema, &store.Products},
		{sheets.CompetitorsSheet, competitorsSchema, &store.Competitors},
		{sheets.RevenueSheet, revenueSchema, &store.Revenue},
		{sheets.PenetrationSheet, penetrationSchema, &store.Penetration},
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)

	for _, b := range bindings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := paths.TablePath(b.sheet)
			table, err := ReadTable(b.sheet, path)
			if err != nil {
				return apperrors.NewStartupLoadError("failed to load table", err).
					WithContext("sheet", b.sheet).
					WithContext("path", path)
			}
			if err := table.Require(b.required...); err != nil {
				return apperrors.NewStartupLoadError("table does not match schema", err).
					WithContext("sheet", b.sheet).
					WithContext("path", path)
			}

			*b.target = table

			logger.DebugContext(ctx, "Table loaded",
				slog.String("sheet", b.sheet),
				slog.String("path", path),
				slog.Int("rows", table.Len()),
				slog.Int("columns", len(table.Columns)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if !apperrors.IsType(err, apperrors.ErrTypeStartupLoad) {
			err = apperrors.NewStartupLoadError("dataset loading interrupted", err)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "Dataset loaded",
		slog.Int("products", store.Products.Len()),
		slog.Int("competitors", store.Competitors.Len()),
		slog.Int("revenue", store.Revenue.Len()),
		slog.Int("penetration", store.Penetration.Len()),
		slog.Duration("duration", time.Since(start)))

	return store, nil
}
