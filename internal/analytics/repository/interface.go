package repository

import (
	"context"

	"retail-insights/internal/analytics"
	"retail-insights/internal/model"
)

// Repository is the composed interface for the analytics data store.
type Repository interface {
	TransactionRepository
	MetricRepository
}

// TransactionRepository reads per-entity transaction history.
type TransactionRepository interface {
	ListTransactions(ctx context.Context, opt ListTransactionsOptions) ([]model.Transaction, error)
	GetCustomerSummary(ctx context.Context, opt ListTransactionsOptions) (analytics.CustomerSummary, error)
	GetProductSummary(ctx context.Context, opt ListTransactionsOptions) (analytics.ProductSummary, error)
	ListStores(ctx context.Context, opt ListTransactionsOptions) ([]string, error)
}

// MetricRepository reads store-wide aggregates.
type MetricRepository interface {
	GetOverallSummary(ctx context.Context, opt RangeOptions) (analytics.OverallSummary, error)
	ListGroupMetrics(ctx context.Context, opt GroupOptions) ([]analytics.GroupMetric, error)
	ListTopCustomers(ctx context.Context, opt TopOptions) ([]analytics.RankedCustomer, error)
	ListTopProducts(ctx context.Context, opt TopOptions) ([]analytics.RankedProduct, error)
}

// IngestRepository rebuilds the transactions table from a dataset.
type IngestRepository interface {
	ResetSchema(ctx context.Context) error
	InsertTransactions(ctx context.Context, txs []model.Transaction) error
}
