package http

import (
	"context"

	"irevolution/pkg/contracts/domain"
)

// DashboardServiceInterface defines the operations behind the dashboard API
type DashboardServiceInterface interface {
	KPIs(ctx context.Context) (*domain.KPISet, error)
	Products(ctx context.Context) ([]domain.ProductRecord, error)
}
