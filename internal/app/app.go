package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"irevolution/internal/config"
	"irevolution/internal/dataprocessing"
	apperrors "irevolution/internal/errors"
	"irevolution/internal/infrastructure"
	customMiddleware "irevolution/internal/middleware"
	"irevolution/internal/services"
	handlers "irevolution/internal/transport/http"
	"irevolution/pkg/contracts"
)

// Application represents the dashboard server and everything it owns
type Application struct {
	Config           *config.Config
	Paths            *config.Paths
	Router           *chi.Mux
	Server           *http.Server
	Store            *dataprocessing.Store
	DashboardService *services.DashboardService
	HealthService    *services.HealthService
	ErrorHandler     *apperrors.ErrorHandler
	Logger           *slog.Logger
	OTelProviders    *infrastructure.OTelProviders
	Metrics          *infrastructure.BusinessMetrics
	FrontendFS       fs.FS
}

// NewApplication resolves paths, loads the dataset and builds the router.
// The dataset is loaded exactly once; any table that is missing or lacks a
// required column fails construction with a STARTUP_LOAD error so the
// server never serves partial data.
func NewApplication(ctx context.Context, cfg *config.Config, frontendFS fs.FS, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "Application starting",
		slog.String("name", config.AppName),
		slog.String("version", contracts.Version))

	paths, err := cfg.ResolvePaths()
	if err != nil {
		return nil, apperrors.NewConfigError("failed to resolve paths", err)
	}
	logger.InfoContext(ctx, "Application paths", slog.Any("paths", paths))

	store, err := dataprocessing.LoadStore(ctx, paths, cfg.Dataset, logger)
	if err != nil {
		return nil, err
	}

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics, err := infrastructure.CreateBusinessMetrics(otelProviders.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Paths:         paths,
		Store:         store,
		Logger:        logger,
		OTelProviders: otelProviders,
		Metrics:       metrics,
		FrontendFS:    frontendFS,
		ErrorHandler:  apperrors.NewErrorHandler(logger, false),
	}

	app.DashboardService = services.NewDashboardService(store, metrics, logger)
	app.HealthService = services.NewHealthService(contracts.Version, store, paths, logger)

	if err := app.setupRouter(); err != nil {
		return nil, err
	}
	app.createServer()

	return app, nil
}

// setupRouter follows the middleware order
// RequestID → RealIP → OTel → Logger → Recoverer → security → compress → CORS → rate limit
func (a *Application) setupRouter() error {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)

	otelMiddleware, err := customMiddleware.NewOTelMiddleware(a.OTelProviders, a.Metrics)
	if err != nil {
		return fmt.Errorf("failed to create OpenTelemetry middleware: %w", err)
	}

	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(otelMiddleware.Handler)
		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(customMiddleware.Recoverer(a.ErrorHandler))
		r.Use(customMiddleware.SecurityHeaders)
		r.Use(customMiddleware.Compress(5))

		if a.Config.Security.EnableCORS {
			r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
				AllowedOrigins: a.Config.Security.AllowedOrigins,
				Logger:         a.Logger,
			}))
		}

		if a.Config.Security.RateLimit.Enabled {
			r.Use(customMiddleware.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.Logger,
			).Handler)
		}

		a.setupAPIRoutes(r)
		a.setupHTMLRoutes(r)
	})

	r.NotFound(a.ErrorHandler.NotFound)
	r.MethodNotAllowed(a.ErrorHandler.MethodNotAllowed)

	a.Router = r
	return nil
}

func (a *Application) setupAPIRoutes(r chi.Router) {
	dashboardHandler := handlers.NewDashboardHandler(a.DashboardService, a.Logger, a.ErrorHandler)
	healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/version", healthHandler.Version)
		r.Mount("/", dashboardHandler.Routes())
	})
}

func (a *Application) setupHTMLRoutes(r chi.Router) {
	if a.FrontendFS == nil {
		a.Logger.Warn("No frontend embedded, dashboard page disabled")
		return
	}
	r.Get("/", handlers.ServeIndex(a.FrontendFS))
	r.Handle("/static/*", handlers.StaticFiles(a.FrontendFS, "/static/"))
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Serve accepts connections on l until Stop is called
func (a *Application) Serve(l net.Listener) error {
	a.Logger.Info("Server listening",
		slog.String("address", l.Addr().String()))

	if err := a.Server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Stop drains in-flight requests within the shutdown timeout and flushes
// telemetry
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		}
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run serves on the configured port until SIGINT or SIGTERM
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.Server.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Serve(l)
	}()

	a.Logger.InfoContext(ctx, "Application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)),
		slog.Int("products", a.Store.Products.Len()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		a.Logger.Info("Received interrupt signal")
	}

	// The parent context is already cancelled; give shutdown its own budget
	shutdownCtx := context.WithoutCancel(ctx)
	if err := a.Stop(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Handler exposes the router for in-process use
func (a *Application) Handler() http.Handler {
	return a.Router
}

// startupTimeout bounds dataset loading in callers that have no deadline
const startupTimeout = 30 * time.Second

// LoadAndRun builds the application and serves until interrupted
func LoadAndRun(cfg *config.Config, frontendFS fs.FS, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	app, err := NewApplication(ctx, cfg, frontendFS, logger)
	cancel()
	if err != nil {
		return err
	}
	return app.Run(context.Background())
}
