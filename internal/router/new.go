package router

import (
	"context"

	"retail-insights/internal/model"
	"retail-insights/pkg/datemath"
	"retail-insights/pkg/log"
	"retail-insights/pkg/retailapi"
)

// Router maps an intent onto exactly one data query.
type Router interface {
	Route(ctx context.Context, intent model.Intent) (RoutedResult, error)
}

// DataSource is the aggregation API as seen by the router.
type DataSource interface {
	GetCustomer(ctx context.Context, customerID int64, r datemath.Range) (*retailapi.CustomerResult, error)
	GetProduct(ctx context.Context, productID string, r datemath.Range) (*retailapi.ProductResult, error)
	GetSummary(ctx context.Context, r datemath.Range) (*retailapi.SummaryResult, error)
	GetByCategory(ctx context.Context, r datemath.Range) (*retailapi.CategoryBreakdown, error)
	GetByPayment(ctx context.Context, r datemath.Range) (*retailapi.PaymentBreakdown, error)
	GetTopCustomers(ctx context.Context, limit int, r datemath.Range) (*retailapi.TopCustomers, error)
	GetTopProducts(ctx context.Context, limit int, r datemath.Range) (*retailapi.TopProducts, error)
}

var _ DataSource = (*retailapi.Client)(nil)

// QueryRouter is the deterministic Router. It keeps no state between calls.
type QueryRouter struct {
	data DataSource
	l    log.Logger
}

var _ Router = (*QueryRouter)(nil)

// New creates a QueryRouter over data.
func New(data DataSource, l log.Logger) *QueryRouter {
	return &QueryRouter{
		data: data,
		l:    l,
	}
}
