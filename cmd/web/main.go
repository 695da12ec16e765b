package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"irevolution/internal/app"
	"irevolution/internal/config"
	"irevolution/internal/infrastructure"
)

// Embedded dashboard page and assets
//
//go:embed all:frontend
var frontendFiles embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		slog.Error("Failed to resolve paths", slog.String("error", err.Error()))
		os.Exit(1)
	}
	cfg.ResolveLogFile(paths, "web.log")

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	var frontendFS fs.FS
	if sub, err := fs.Sub(frontendFiles, "frontend"); err == nil {
		frontendFS = sub
	} else {
		logger.Warn("Frontend embedding failed", slog.String("error", err.Error()))
	}

	if err := app.LoadAndRun(cfg, frontendFS, logger); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}
}
