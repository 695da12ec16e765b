package ingest

import (
	"context"
	"log/slog"
	"slices"

	"github.com/xuri/excelize/v2"

	"irevolution/internal/config"
	apperrors "irevolution/internal/errors"
	"irevolution/internal/exporter"
	"irevolution/internal/files"
	"irevolution/internal/validation"
)

// SheetReport summarizes one exported sheet
type SheetReport struct {
	Sheet   string   `json:"sheet"`
	File    string   `json:"file"`
	Rows    int      `json:"rows"`
	Dropped int      `json:"dropped"`
	Columns []string `json:"columns"`
}

// SheetExporter splits the cached workbook into one CSV table per sheet
type SheetExporter struct {
	paths     *config.Paths
	writer    *exporter.CSVWriter
	validator *validation.FileValidator
	expected  []string
	logger    *slog.Logger
}

// NewSheetExporter creates an exporter reading paths.WorkbookFile and
// writing into paths.DataDir. expected lists sheet names the workbook is
// documented to contain; missing ones are only reported.
func NewSheetExporter(paths *config.Paths, expected []string, logger *slog.Logger) *SheetExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SheetExporter{
		paths:     paths,
		writer:    exporter.NewCSVWriter(logger),
		validator: validation.NewFileValidator(logger),
		expected:  expected,
		logger:    logger.With(slog.String("component", "sheet_exporter")),
	}
}

// ExportAllSheets writes every sheet found in the workbook to its table
// file, overwriting earlier exports. The first sheet that cannot be decoded
// stops the run with a PARSE error; tables already written are kept.
func (e *SheetExporter) ExportAllSheets(ctx context.Context) ([]SheetReport, error) {
	if err := e.validator.ValidateWorkbookFile(e.paths.WorkbookFile); err != nil {
		return nil, apperrors.NewParseError("workbook is not usable", err).
			WithContext("path", e.paths.WorkbookFile)
	}
	if err := e.validator.ValidateOutputDirectory(e.paths.DataDir); err != nil {
		return nil, apperrors.NewStorageError("data directory is not writable", err).
			WithContext("path", e.paths.DataDir)
	}

	book, err := excelize.OpenFile(e.paths.WorkbookFile)
	if err != nil {
		return nil, apperrors.NewParseError("failed to open workbook", err).
			WithContext("path", e.paths.WorkbookFile)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	e.logger.InfoContext(ctx, "Sheets found in workbook", slog.Any("sheets", sheets))
	e.checkExpected(ctx, sheets)

	reports := make([]SheetReport, 0, len(sheets))
	for _, name := range sheets {
		if err := ctx.Err(); err != nil {
			return reports, apperrors.NewCancelledError("sheet export interrupted", err).
				WithContext("sheet", name).
				WithContext("exported", len(reports))
		}

		raw, err := book.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return reports, apperrors.NewParseError("failed to decode sheet", err).
				WithContext("sheet", name)
		}

		report, err := e.exportSheet(ctx, CleanSheet(name, raw))
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}

	e.logger.InfoContext(ctx, "All sheets exported",
		slog.Int("sheets", len(reports)),
		slog.String("data_dir", e.paths.DataDir))

	return reports, nil
}

func (e *SheetExporter) exportSheet(ctx context.Context, sheet Sheet) (SheetReport, error) {
	path := e.paths.TablePath(sheet.Name)

	err := e.writer.WriteCSV(path, exporter.WriteOptions{
		Headers: sheet.Columns,
		Records: sheet.Rows,
	})
	if err != nil {
		return SheetReport{}, apperrors.NewStorageError("failed to write table", err).
			WithContext("sheet", sheet.Name).
			WithContext("path", path)
	}

	report := SheetReport{
		Sheet:   sheet.Name,
		File:    files.SheetFileName(sheet.Name),
		Rows:    len(sheet.Rows),
		Dropped: sheet.Dropped,
		Columns: sheet.Columns,
	}

	e.logger.InfoContext(ctx, "Sheet exported",
		slog.String("sheet", report.Sheet),
		slog.Int("rows", report.Rows),
		slog.Int("dropped_rows", report.Dropped),
		slog.Any("columns", report.Columns),
		slog.String("path", path))

	return report, nil
}

func (e *SheetExporter) checkExpected(ctx context.Context, sheets []string) {
	for _, name := range e.expected {
		if !slices.Contains(sheets, name) {
			e.logger.WarnContext(ctx, "Expected sheet not found in workbook",
				slog.String("sheet", name))
		}
	}
}
