package ingest

import (
	"context"
	"log/slog"
)

// Ingestor runs the fetch and export steps in sequence
type Ingestor struct {
	fetcher  *Fetcher
	exporter *SheetExporter
	logger   *slog.Logger
}

// NewIngestor wires a fetcher and an exporter into one batch job
func NewIngestor(fetcher *Fetcher, exporter *SheetExporter, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{fetcher: fetcher, exporter: exporter, logger: logger}
}

// Run fetches the workbook if needed and exports all of its sheets
func (i *Ingestor) Run(ctx context.Context) ([]SheetReport, error) {
	if _, err := i.fetcher.FetchWorkbook(ctx); err != nil {
		return nil, err
	}
	return i.exporter.ExportAllSheets(ctx)
}
