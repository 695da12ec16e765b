package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"irevolution/internal/config"
	apperrors "irevolution/internal/errors"
	"irevolution/internal/files"
)

// FetchResult describes the outcome of FetchWorkbook
type FetchResult struct {
	Path     string        `json:"path"`
	Skipped  bool          `json:"skipped"`
	Bytes    int64         `json:"bytes"`
	Duration time.Duration `json:"duration"`
}

// Fetcher downloads the remote workbook into the data directory
type Fetcher struct {
	url    string
	path   string
	client *http.Client
	logger *slog.Logger
}

// NewFetcher creates a fetcher for cfg.WorkbookURL that caches the payload
// at workbookPath. Requests are bounded by cfg.FetchTimeout.
func NewFetcher(cfg config.SourceConfig, workbookPath string, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		url:    cfg.WorkbookURL,
		path:   workbookPath,
		client: &http.Client{Timeout: cfg.FetchTimeout},
		logger: logger.With(slog.String("component", "fetcher")),
	}
}

// FetchWorkbook makes sure a local copy of the workbook exists. An existing
// file is never re-downloaded and no request is made. Otherwise the response
// body is written verbatim; any non-2xx status fails with a FETCH error.
func (f *Fetcher) FetchWorkbook(ctx context.Context) (*FetchResult, error) {
	if files.FileExists(f.path) {
		f.logger.InfoContext(ctx, "Workbook already exists, skipping download",
			slog.String("path", f.path))
		return &FetchResult{Path: f.path, Skipped: true}, nil
	}

	f.logger.InfoContext(ctx, "Downloading workbook",
		slog.String("url", f.url),
		slog.Duration("timeout", f.client.Timeout))

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, apperrors.NewFetchError("failed to build workbook request", err).
			WithContext("url", f.url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError("failed to download workbook", err).
			WithContext("url", f.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewFetchError(
			fmt.Sprintf("unexpected status %d downloading workbook", resp.StatusCode), nil).
			WithContext("url", f.url).
			WithContext("status", resp.StatusCode)
	}

	n, err := files.WriteFileAtomic(f.path, resp.Body)
	if err != nil {
		// A body that stops mid-stream is a network failure as well
		return nil, apperrors.NewFetchError("failed to save workbook", err).
			WithContext("path", f.path)
	}

	result := &FetchResult{
		Path:     f.path,
		Bytes:    n,
		Duration: time.Since(start),
	}

	f.logger.InfoContext(ctx, "Workbook saved",
		slog.String("path", f.path),
		slog.Int64("bytes", n),
		slog.Duration("duration", result.Duration))

	return result, nil
}
