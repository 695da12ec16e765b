// Package http implements the HTTP handlers of the dashboard server.
//
// Handlers stay thin: they call a service, map service errors to RFC 7807
// problems through errors.ErrorHandler and render the result with
// go-chi/render.
//
//	GET /                    dashboard page (embedded)
//	GET /static/*            page assets (embedded)
//	GET /api/kpis            KPI set
//	GET /api/apple-products  product listing
//	GET /api/health          health and loaded tables
package http
