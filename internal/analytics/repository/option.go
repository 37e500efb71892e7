package repository

import "retail-insights/pkg/datemath"

// ListTransactionsOptions selects one entity's transactions.
// Exactly one of CustomerID or ProductID is expected.
type ListTransactionsOptions struct {
	CustomerID *int64
	ProductID  *string
	Range      datemath.Range
}

// RangeOptions filters by transaction date only.
type RangeOptions struct {
	Range datemath.Range
}

// Dimension is a column a breakdown can be grouped by.
type Dimension string

const (
	DimensionCategory Dimension = "ProductCategory"
	DimensionPayment  Dimension = "PaymentMethod"
)

// GroupOptions selects a grouped breakdown.
type GroupOptions struct {
	Dimension Dimension
	Range     datemath.Range
}

// TopOptions selects a ranking. Limit is already clamped.
type TopOptions struct {
	Limit int
	Range datemath.Range
}
