// Package main provides the ingestor CLI: it downloads the market workbook
// and exports every sheet as a CSV table into the data directory.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"irevolution/internal/config"
	"irevolution/internal/infrastructure"
	"irevolution/internal/ingest"
	"irevolution/pkg/contracts"
)

type options struct {
	configFile string
	baseDir    string
	dataDir    string
	url        string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ingestor",
		Short: "Fetch the smartphone market workbook and export its sheets as CSV",
		Long: `ingestor downloads the market workbook (skipped when a local copy exists)
and writes one cleaned CSV table per sheet into the data directory.
Without a subcommand it runs both steps.`,
		Version:       contracts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(cmd, opts, stepAll)
		},
	}

	rootCmd.SetVersionTemplate(contracts.GetFullVersionString() + "\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to a YAML config file")
	flags.StringVar(&opts.baseDir, "base-dir", "", "Base directory for relative paths (default: working directory)")
	flags.StringVar(&opts.dataDir, "data-dir", "", "Directory for the workbook and exported tables")
	flags.StringVar(&opts.url, "url", "", "Workbook download URL")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "fetch",
		Short: "Download the workbook unless it is already present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(cmd, opts, stepFetch)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Export every sheet of the local workbook as a CSV table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(cmd, opts, stepExport)
		},
	})

	return rootCmd
}

type step int

const (
	stepAll step = iota
	stepFetch
	stepExport
)

func runStep(cmd *cobra.Command, opts *options, s step) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: failed to resolve paths: %v\n", err)
		return err
	}
	cfg.ResolveLogFile(paths, "ingestor.log")

	logger, err := infrastructure.NewLogger(cfg.Logging, cmd.OutOrStdout())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: failed to initialize logger: %v\n", err)
		return err
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureTraceID(cmd.Context())

	if err := paths.EnsureDirectories(); err != nil {
		logger.ErrorContext(ctx, "Failed to create directories", slog.String("error", err.Error()))
		return err
	}

	fetcher := ingest.NewFetcher(cfg.Source, paths.WorkbookFile, logger)
	exporter := ingest.NewSheetExporter(paths, config.ExpectedSheets, logger)

	switch s {
	case stepFetch:
		_, err = fetcher.FetchWorkbook(ctx)
	case stepExport:
		_, err = exporter.ExportAllSheets(ctx)
	default:
		_, err = ingest.NewIngestor(fetcher, exporter, logger).Run(ctx)
	}

	if err != nil {
		logger.ErrorContext(ctx, "Ingestion failed", slog.String("error", err.Error()))
		return err
	}

	logger.InfoContext(ctx, "Ingestion completed", slog.Any("paths", paths))
	return nil
}

func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configFile != "" {
		cfg, err = config.LoadFrom(opts.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.baseDir != "" {
		cfg.Paths.BaseDir = opts.baseDir
	}
	if opts.dataDir != "" {
		cfg.Paths.DataDir = opts.dataDir
	}
	if opts.url != "" {
		cfg.Source.WorkbookURL = opts.url
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	return cfg, nil
}
