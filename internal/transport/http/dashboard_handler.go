package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "irevolution/internal/errors"
	"irevolution/internal/services"
)

// DashboardHandler serves the KPI and product endpoints
type DashboardHandler struct {
	service      DashboardServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dashboard routes, to be mounted under /api
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/kpis", h.GetKPIs)
	r.Get("/apple-products", h.GetProducts)

	return r
}

// GetKPIs handles GET /api/kpis
func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.service.KPIs(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, kpis)
}

// GetProducts handles GET /api/apple-products
func (h *DashboardHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Products(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "products listed",
		slog.Int("count", len(products)))

	render.JSON(w, r, products)
}

func (h *DashboardHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrDatasetUnavailable) {
		h.errorHandler.HandleError(w, r, apierrors.ErrDatasetUnavailable)
		return
	}
	h.errorHandler.HandleError(w, r, err)
}
