// Package config provides centralized configuration management for the
// ingestor and the dashboard server.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (IREV_CONFIG, config.yaml or configs/config.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern IREV_<SECTION>_<FIELD>:
//
//	IREV_SERVER_PORT=5000
//	IREV_PATHS_DATA_DIR=/srv/irevolution/data
//	IREV_SOURCE_FETCH_TIMEOUT=90s
//	IREV_DATASET_PRODUCTS_SHEET=apple_products
//	IREV_LOGGING_LEVEL=debug
//
// # Paths
//
// Paths is the single source of truth for on-disk locations shared by the
// ingestor and the server: the cached workbook and one CSV table per sheet.
package config
