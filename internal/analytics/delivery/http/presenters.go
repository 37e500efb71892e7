package http

import (
	"retail-insights/internal/analytics"
	"retail-insights/internal/model"
	"retail-insights/pkg/datemath"
	"retail-insights/pkg/retailapi"
)

// Response bodies are the retailapi wire types so client and server share one contract.

func newFilters(r datemath.Range) retailapi.Filters {
	return retailapi.Filters{From: r.From, To: r.To}
}

func newTransactions(txs []model.Transaction) []retailapi.Transaction {
	out := make([]retailapi.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, retailapi.Transaction{
			ID:                 t.ID,
			CustomerID:         t.CustomerID,
			ProductID:          t.ProductID,
			Quantity:           t.Quantity,
			Price:              t.Price,
			TransactionDate:    t.TransactionDate,
			PaymentMethod:      t.PaymentMethod,
			StoreLocation:      t.StoreLocation,
			ProductCategory:    t.ProductCategory,
			DiscountAppliedPct: t.DiscountAppliedPct,
			TotalAmount:        t.TotalAmount,
		})
	}
	return out
}

func (h *handler) newCustomerResp(o analytics.CustomerOutput) retailapi.CustomerResult {
	resp := retailapi.CustomerResult{
		CustomerID:   o.CustomerID,
		Transactions: newTransactions(o.Transactions),
		Filters:      newFilters(o.Range),
	}
	if o.Summary != nil {
		resp.Summary = &retailapi.CustomerSummary{
			TransactionCount: o.Summary.TransactionCount,
			TotalSpend:       o.Summary.TotalSpend,
			FirstTransaction: o.Summary.FirstTransaction,
			LastTransaction:  o.Summary.LastTransaction,
		}
	}
	return resp
}

func (h *handler) newProductResp(o analytics.ProductOutput) retailapi.ProductResult {
	resp := retailapi.ProductResult{
		ProductID:    o.ProductID,
		Transactions: newTransactions(o.Transactions),
		Filters:      newFilters(o.Range),
	}
	if o.Summary != nil {
		stores := o.Summary.Stores
		if stores == nil {
			stores = []string{}
		}
		resp.Summary = &retailapi.ProductSummary{
			TransactionCount:   o.Summary.TransactionCount,
			TotalQuantity:      o.Summary.TotalQuantity,
			TotalRevenue:       o.Summary.TotalRevenue,
			UniqueCustomers:    o.Summary.UniqueCustomers,
			AverageDiscountPct: o.Summary.AverageDiscountPct,
			Stores:             stores,
			StoreCount:         len(stores),
		}
	}
	return resp
}

func (h *handler) newSummaryResp(o analytics.SummaryOutput) retailapi.SummaryResult {
	return retailapi.SummaryResult{
		Filters: newFilters(o.Range),
		Summary: &retailapi.OverallSummary{
			TransactionCount: o.Summary.TransactionCount,
			TotalRevenue:     o.Summary.TotalRevenue,
			UniqueCustomers:  o.Summary.UniqueCustomers,
			UniqueProducts:   o.Summary.UniqueProducts,
			FirstTransaction: o.Summary.FirstTransaction,
			LastTransaction:  o.Summary.LastTransaction,
		},
	}
}

func (h *handler) newCategoryResp(o analytics.GroupOutput) retailapi.CategoryBreakdown {
	metrics := make([]retailapi.CategoryMetric, 0, len(o.Metrics))
	for _, m := range o.Metrics {
		metrics = append(metrics, retailapi.CategoryMetric{
			ProductCategory:  m.Key,
			TransactionCount: m.TransactionCount,
			TotalQuantity:    m.TotalQuantity,
			TotalRevenue:     m.TotalRevenue,
		})
	}
	return retailapi.CategoryBreakdown{Filters: newFilters(o.Range), Metrics: metrics}
}

func (h *handler) newPaymentResp(o analytics.GroupOutput) retailapi.PaymentBreakdown {
	metrics := make([]retailapi.PaymentMetric, 0, len(o.Metrics))
	for _, m := range o.Metrics {
		metrics = append(metrics, retailapi.PaymentMetric{
			PaymentMethod:    m.Key,
			TransactionCount: m.TransactionCount,
			TotalQuantity:    m.TotalQuantity,
			TotalRevenue:     m.TotalRevenue,
		})
	}
	return retailapi.PaymentBreakdown{Filters: newFilters(o.Range), Metrics: metrics}
}

// limitAnnotations returns limitRequested/limitApplied when the request was capped.
func limitAnnotations(w analytics.LimitWindow) (*int, *int) {
	if !w.Capped {
		return nil, nil
	}
	requested, applied := w.Requested, analytics.MaxTopLimit
	return &requested, &applied
}

func (h *handler) newTopCustomersResp(o analytics.TopCustomersOutput) retailapi.TopCustomers {
	metrics := make([]retailapi.TopCustomer, 0, len(o.Metrics))
	for _, m := range o.Metrics {
		metrics = append(metrics, retailapi.TopCustomer{
			CustomerID:       m.CustomerID,
			TransactionCount: m.TransactionCount,
			TotalRevenue:     m.TotalRevenue,
		})
	}
	requested, applied := limitAnnotations(o.LimitWindow)
	return retailapi.TopCustomers{
		Filters:        newFilters(o.Range),
		Limit:          o.Limit,
		Metrics:        metrics,
		LimitRequested: requested,
		LimitApplied:   applied,
	}
}

func (h *handler) newTopProductsResp(o analytics.TopProductsOutput) retailapi.TopProducts {
	metrics := make([]retailapi.TopProduct, 0, len(o.Metrics))
	for _, m := range o.Metrics {
		metrics = append(metrics, retailapi.TopProduct{
			ProductID:        m.ProductID,
			TransactionCount: m.TransactionCount,
			TotalQuantity:    m.TotalQuantity,
			TotalRevenue:     m.TotalRevenue,
		})
	}
	requested, applied := limitAnnotations(o.LimitWindow)
	return retailapi.TopProducts{
		Filters:        newFilters(o.Range),
		Limit:          o.Limit,
		Metrics:        metrics,
		LimitRequested: requested,
		LimitApplied:   applied,
	}
}
