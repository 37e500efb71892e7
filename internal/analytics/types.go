package analytics

import (
	"retail-insights/internal/model"
	"retail-insights/pkg/datemath"
)

const (
	// DefaultTopLimit applies when no limit is given or it does not parse.
	DefaultTopLimit = 5
	// MaxTopLimit is the largest ranking served.
	MaxTopLimit = 15
)

// --- Aggregates ---

type CustomerSummary struct {
	TransactionCount int64
	TotalSpend       float64
	FirstTransaction string
	LastTransaction  string
}

type ProductSummary struct {
	TransactionCount   int64
	TotalQuantity      int64
	TotalRevenue       float64
	UniqueCustomers    int64
	AverageDiscountPct float64
	Stores             []string
}

// OverallSummary sums are nil when the range holds no transactions.
type OverallSummary struct {
	TransactionCount int64
	TotalRevenue     *float64
	UniqueCustomers  int64
	UniqueProducts   int64
	FirstTransaction *string
	LastTransaction  *string
}

// GroupMetric is one row of a grouped breakdown; Key is the group value.
type GroupMetric struct {
	Key              string
	TransactionCount int64
	TotalQuantity    int64
	TotalRevenue     float64
}

type RankedCustomer struct {
	CustomerID       int64
	TransactionCount int64
	TotalRevenue     float64
}

type RankedProduct struct {
	ProductID        string
	TransactionCount int64
	TotalQuantity    int64
	TotalRevenue     float64
}

// --- UseCase Inputs ---

type RangeInput struct {
	Range datemath.Range
}

type CustomerInput struct {
	CustomerID int64
	Range      datemath.Range
}

type ProductInput struct {
	ProductID string
	Range     datemath.Range
}

// TopInput carries the limit as requested by the caller, before clamping.
type TopInput struct {
	RequestedLimit int
	Range          datemath.Range
}

// --- UseCase Outputs ---

type CustomerOutput struct {
	CustomerID   int64
	Transactions []model.Transaction
	Summary      *CustomerSummary
	Range        datemath.Range
}

type ProductOutput struct {
	ProductID    string
	Transactions []model.Transaction
	Summary      *ProductSummary
	Range        datemath.Range
}

type SummaryOutput struct {
	Summary OverallSummary
	Range   datemath.Range
}

type GroupOutput struct {
	Metrics []GroupMetric
	Range   datemath.Range
}

// LimitWindow reports how a requested ranking size was clamped.
type LimitWindow struct {
	Limit     int
	Requested int
	Capped    bool
}

type TopCustomersOutput struct {
	LimitWindow
	Metrics []RankedCustomer
	Range   datemath.Range
}

type TopProductsOutput struct {
	LimitWindow
	Metrics []RankedProduct
	Range   datemath.Range
}
