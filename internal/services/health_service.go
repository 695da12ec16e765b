package services

import (
	"context"
	"log/slog"
	"time"

	"irevolution/internal/config"
	"irevolution/internal/dataprocessing"
	"irevolution/internal/files"
	"irevolution/pkg/contracts/domain"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	store     *dataprocessing.Store
	paths     *config.Paths
	startTime time.Time
	logger    *slog.Logger
}

// NewHealthService creates a new health service
func NewHealthService(version string, store *dataprocessing.Store, paths *config.Paths, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		store:     store,
		paths:     paths,
		startTime: time.Now(),
		logger:    logger.With(slog.String("service", "health")),
	}
}

// HealthCheck reports liveness together with the loaded table sizes
func (s *HealthService) HealthCheck(ctx context.Context) domain.HealthStatus {
	status := domain.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Tables:    []domain.TableStatus{},
	}

	if s.store == nil {
		status.Status = "degraded"
	} else {
		for _, table := range s.store.Tables() {
			status.Tables = append(status.Tables, domain.TableStatus{
				Sheet:   table.Name,
				File:    files.SheetFileName(table.Name),
				Rows:    table.Len(),
				Columns: len(table.Columns),
			})
		}
	}

	if s.paths != nil {
		exported, err := files.FindTables(s.paths.DataDir)
		if err != nil {
			s.logger.WarnContext(ctx, "Failed to list exported tables",
				slog.String("data_dir", s.paths.DataDir),
				slog.String("error", err.Error()))
		}
		status.Exported = len(exported)
	}

	return status
}
