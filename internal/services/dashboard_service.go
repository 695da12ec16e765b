package services

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"irevolution/internal/dataprocessing"
	"irevolution/internal/infrastructure"
	"irevolution/pkg/contracts/domain"
)

// DashboardService computes the dashboard responses from the loaded tables.
// It only reads the store and is safe for concurrent use.
type DashboardService struct {
	store   *dataprocessing.Store
	metrics *infrastructure.BusinessMetrics
	logger  *slog.Logger
}

// NewDashboardService creates a dashboard service over store
func NewDashboardService(store *dataprocessing.Store, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = infrastructure.NoopBusinessMetrics()
	}
	return &DashboardService{
		store:   store,
		metrics: metrics,
		logger:  logger.With(slog.String("service", "dashboard")),
	}
}

// KPIs computes the headline figures. Columns without numeric values
// produce nil fields rather than an error.
func (s *DashboardService) KPIs(ctx context.Context) (*domain.KPISet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrDatasetUnavailable
	}

	products := s.store.Products
	competitors := s.store.Competitors
	penetration := s.store.Penetration

	kpis := &domain.KPISet{
		TotalProducts:       products.Len(),
		AvgPrice:            dataprocessing.Truncate(dataprocessing.Mean(products.Column(dataprocessing.ColSalePrice))),
		AvgRating:           dataprocessing.Round(dataprocessing.Mean(products.Column(dataprocessing.ColStarRating)), 1),
		LatestRevenue:       dataprocessing.LastNumber(s.store.Revenue.Column(dataprocessing.ColRevenue)),
		TotalBrands:         dataprocessing.DistinctCount(competitors.Column(dataprocessing.ColBrand)),
		TotalModelsFlipkart: dataprocessing.DistinctCount(competitors.Column(dataprocessing.ColModel)),
		MaxUnitsSold:        dataprocessing.Max(penetration.Column(dataprocessing.ColUnitsSold)),
		MaxActiveUsers:      dataprocessing.Max(penetration.Column(dataprocessing.ColActiveUsers)),
	}

	s.metrics.KPIComputations.Add(ctx, 1)
	s.recordEmpty(ctx, kpis)

	return kpis, nil
}

func (s *DashboardService) recordEmpty(ctx context.Context, kpis *domain.KPISet) {
	empty := map[string]bool{
		"avgPrice":       kpis.AvgPrice == nil,
		"avgRating":      kpis.AvgRating == nil,
		"latestRevenue":  kpis.LatestRevenue == nil,
		"maxUnitsSold":   kpis.MaxUnitsSold == nil,
		"maxActiveUsers": kpis.MaxActiveUsers == nil,
	}
	for field, isEmpty := range empty {
		if !isEmpty {
			continue
		}
		s.metrics.EmptyAggregates.Add(ctx, 1, metric.WithAttributes(attribute.String("field", field)))
		s.logger.DebugContext(ctx, "KPI has no numeric input", slog.String("field", field))
	}
}

// Products projects every product row onto the product columns. An empty
// catalog yields an empty, non-nil slice.
func (s *DashboardService) Products(ctx context.Context) ([]domain.ProductRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrDatasetUnavailable
	}

	table := s.store.Products
	records := make([]domain.ProductRecord, 0, table.Len())

	for row := 0; row < table.Len(); row++ {
		cell := func(column string) any {
			v, _ := table.Value(row, column)
			return productValue(v)
		}
		name, _ := table.Value(row, dataprocessing.ColProductName)

		records = append(records, domain.ProductRecord{
			ProductName:        name,
			SalePrice:          cell(dataprocessing.ColSalePrice),
			Mrp:                cell(dataprocessing.ColMrp),
			DiscountPercentage: cell(dataprocessing.ColDiscountPercentage),
			NumberOfRatings:    cell(dataprocessing.ColNumberOfRatings),
			StarRating:         cell(dataprocessing.ColStarRating),
			Ram:                cell(dataprocessing.ColRam),
		})
	}

	return records, nil
}

// productValue keeps numbers numeric in the JSON output
func productValue(cell string) any {
	if v, ok := dataprocessing.ParseNumber(cell); ok {
		return v
	}
	return cell
}
