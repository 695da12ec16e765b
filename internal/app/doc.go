// Package app wires the dashboard server together and manages its lifecycle.
//
// # Initialization Flow
//
//	1. Resolve paths from configuration
//	2. Load the four dataset tables (fails fast on any problem)
//	3. Initialize OpenTelemetry and the business metrics
//	4. Create services and handlers
//	5. Build the chi router with its middleware chain
//	6. Serve until SIGINT/SIGTERM, then shut down gracefully
//
// Logging is configured by the caller; the application only receives a
// *slog.Logger.
package app
