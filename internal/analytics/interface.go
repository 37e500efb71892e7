package analytics

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Entity lookups
	CustomerHistory(ctx context.Context, input CustomerInput) (CustomerOutput, error)
	ProductDetail(ctx context.Context, input ProductInput) (ProductOutput, error)

	// Store-wide metrics
	Summary(ctx context.Context, input RangeInput) (SummaryOutput, error)
	ByCategory(ctx context.Context, input RangeInput) (GroupOutput, error)
	ByPayment(ctx context.Context, input RangeInput) (GroupOutput, error)
	TopCustomers(ctx context.Context, input TopInput) (TopCustomersOutput, error)
	TopProducts(ctx context.Context, input TopInput) (TopProductsOutput, error)
}
