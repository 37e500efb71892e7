package router

import (
	"retail-insights/internal/model"
	"retail-insights/pkg/retailapi"
)

// Payload is the data half of a RoutedResult. The concrete type tells the
// caller which branch of the router produced it.
type Payload interface {
	Outcome() Status
}

// RoutedResult pairs the intent with the payload it resolved to.
type RoutedResult struct {
	Intent model.Intent `json:"intent"`
	Data   Payload      `json:"data"`
}

// AmbiguousIntent asks the user for the piece the intent is missing.
type AmbiguousIntent struct {
	Status           Status   `json:"status"`
	Reason           Reason   `json:"reason"`
	SupportedMetrics []string `json:"supportedMetrics,omitempty"`
}

func (p AmbiguousIntent) Outcome() Status { return p.Status }

// NoData reports that a well-formed query matched nothing.
type NoData struct {
	Status     Status  `json:"status"`
	Reason     Reason  `json:"reason"`
	CustomerID *int64  `json:"customerId,omitempty"`
	ProductID  *string `json:"productId,omitempty"`
}

func (p NoData) Outcome() Status { return p.Status }

// UnsupportedMetric reports a business metric outside the supported set.
type UnsupportedMetric struct {
	Status           Status   `json:"status"`
	Reason           Reason   `json:"reason"`
	RequestedMetric  string   `json:"requestedMetric"`
	SupportedMetrics []string `json:"supportedMetrics"`
}

func (p UnsupportedMetric) Outcome() Status { return p.Status }

// TransactionWindow describes how a transaction list was cut.
type TransactionWindow struct {
	TransactionCount      int  `json:"transactionCount"`
	TransactionsLimit     int  `json:"transactionsLimit"`
	TransactionsTruncated bool `json:"transactionsTruncated"`
}

// CustomerData is the customer payload with its transaction list capped.
type CustomerData struct {
	retailapi.CustomerResult
	TransactionWindow
}

func (CustomerData) Outcome() Status { return StatusOK }

// ProductSummary is the product summary with its store list capped.
// StoreCount holds the full number of stores.
type ProductSummary struct {
	retailapi.ProductSummary
	StoresLimit     int  `json:"storesLimit"`
	StoresTruncated bool `json:"storesTruncated"`
}

// ProductData is the compact product payload.
type ProductData struct {
	ProductID    string                  `json:"productId"`
	Summary      ProductSummary          `json:"summary"`
	Filters      retailapi.Filters       `json:"filters"`
	Transactions []retailapi.Transaction `json:"transactions"`
	TransactionWindow
}

func (ProductData) Outcome() Status { return StatusOK }

// Business metric payloads are passed through as fetched.
type (
	SummaryData      retailapi.SummaryResult
	CategoryData     retailapi.CategoryBreakdown
	PaymentData      retailapi.PaymentBreakdown
	TopCustomersData retailapi.TopCustomers
	TopProductsData  retailapi.TopProducts
)

func (SummaryData) Outcome() Status      { return StatusOK }
func (CategoryData) Outcome() Status     { return StatusOK }
func (PaymentData) Outcome() Status      { return StatusOK }
func (TopCustomersData) Outcome() Status { return StatusOK }
func (TopProductsData) Outcome() Status  { return StatusOK }
