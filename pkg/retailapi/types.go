package retailapi

// Filters echoes the date bounds a query was run with. Absent bounds are null.
type Filters struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// Transaction is one transaction row as served by the API.
type Transaction struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"CustomerID"`
	ProductID          string  `json:"ProductID"`
	Quantity           int64   `json:"Quantity"`
	Price              float64 `json:"Price"`
	TransactionDate    string  `json:"TransactionDate"`
	PaymentMethod      string  `json:"PaymentMethod"`
	StoreLocation      string  `json:"StoreLocation"`
	ProductCategory    string  `json:"ProductCategory"`
	DiscountAppliedPct float64 `json:"DiscountAppliedPct"`
	TotalAmount        float64 `json:"TotalAmount"`
}

// CustomerSummary aggregates a customer's transactions.
type CustomerSummary struct {
	TransactionCount int64   `json:"transactionCount"`
	TotalSpend       float64 `json:"totalSpend"`
	FirstTransaction string  `json:"firstTransaction"`
	LastTransaction  string  `json:"lastTransaction"`
}

// CustomerResult is the response of GET /api/customers/{id}.
// Summary is nil when the customer has no transactions in range.
type CustomerResult struct {
	CustomerID   int64            `json:"customerId"`
	Transactions []Transaction    `json:"transactions"`
	Summary      *CustomerSummary `json:"summary"`
	Filters      Filters          `json:"filters"`
}

// ProductSummary aggregates a product's transactions.
type ProductSummary struct {
	TransactionCount   int64    `json:"transactionCount"`
	TotalQuantity      int64    `json:"totalQuantity"`
	TotalRevenue       float64  `json:"totalRevenue"`
	UniqueCustomers    int64    `json:"uniqueCustomers"`
	AverageDiscountPct float64  `json:"averageDiscountPct"`
	Stores             []string `json:"stores"`
	StoreCount         int      `json:"storeCount"`
}

// ProductResult is the response of GET /api/products/{id}.
type ProductResult struct {
	ProductID    string          `json:"productId"`
	Transactions []Transaction   `json:"transactions"`
	Summary      *ProductSummary `json:"summary"`
	Filters      Filters         `json:"filters"`
}

// OverallSummary holds store-wide KPIs. Sums and dates are null over an
// empty range.
type OverallSummary struct {
	TransactionCount int64    `json:"transactionCount"`
	TotalRevenue     *float64 `json:"totalRevenue"`
	UniqueCustomers  int64    `json:"uniqueCustomers"`
	UniqueProducts   int64    `json:"uniqueProducts"`
	FirstTransaction *string  `json:"firstTransaction"`
	LastTransaction  *string  `json:"lastTransaction"`
}

// SummaryResult is the response of GET /api/metrics/summary.
type SummaryResult struct {
	Filters Filters         `json:"filters"`
	Summary *OverallSummary `json:"summary"`
}

// CategoryMetric is one row of the per-category breakdown.
type CategoryMetric struct {
	ProductCategory  string  `json:"ProductCategory"`
	TransactionCount int64   `json:"transactionCount"`
	TotalQuantity    int64   `json:"totalQuantity"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// CategoryBreakdown is the response of GET /api/metrics/by_category.
type CategoryBreakdown struct {
	Filters Filters          `json:"filters"`
	Metrics []CategoryMetric `json:"metrics"`
}

// PaymentMetric is one row of the per-payment-method breakdown.
type PaymentMetric struct {
	PaymentMethod    string  `json:"PaymentMethod"`
	TransactionCount int64   `json:"transactionCount"`
	TotalQuantity    int64   `json:"totalQuantity"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// PaymentBreakdown is the response of GET /api/metrics/by_payment.
type PaymentBreakdown struct {
	Filters Filters         `json:"filters"`
	Metrics []PaymentMetric `json:"metrics"`
}

// TopCustomer is one ranked customer.
type TopCustomer struct {
	CustomerID       int64   `json:"CustomerID"`
	TransactionCount int64   `json:"transactionCount"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// TopCustomers is the response of GET /api/metrics/top_customers.
// LimitRequested and LimitApplied are only set when the requested limit was capped.
type TopCustomers struct {
	Filters        Filters       `json:"filters"`
	Limit          int           `json:"limit"`
	Metrics        []TopCustomer `json:"metrics"`
	LimitRequested *int          `json:"limitRequested,omitempty"`
	LimitApplied   *int          `json:"limitApplied,omitempty"`
}

// TopProduct is one ranked product.
type TopProduct struct {
	ProductID        string  `json:"ProductID"`
	TransactionCount int64   `json:"transactionCount"`
	TotalQuantity    int64   `json:"totalQuantity"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// TopProducts is the response of GET /api/metrics/top_products.
type TopProducts struct {
	Filters        Filters      `json:"filters"`
	Limit          int          `json:"limit"`
	Metrics        []TopProduct `json:"metrics"`
	LimitRequested *int         `json:"limitRequested,omitempty"`
	LimitApplied   *int         `json:"limitApplied,omitempty"`
}
