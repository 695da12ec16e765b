// Package services implements the business logic behind the HTTP handlers.
//
// DashboardService computes the KPI set and the product listing from the
// dataset store loaded at startup. It never mutates the store, so a single
// instance serves all requests concurrently. HealthService reports the
// loaded tables for the health endpoint.
//
// Services receive their dependencies through constructors:
//
//	store, err := dataprocessing.LoadStore(ctx, paths, cfg.Dataset, logger)
//	dashboard := services.NewDashboardService(store, metrics, logger)
//	kpis, err := dashboard.KPIs(ctx)
package services
