package router

import (
	"context"
	"fmt"

	"retail-insights/internal/metrics"
	"retail-insights/internal/model"
	"retail-insights/pkg/datemath"
)

// Route resolves intent to a payload with at most one data fetch.
// Missing identifiers, empty results and unknown metrics come back as
// payloads. Errors are a RoutingError for an unknown kind or a failed fetch.
func (r *QueryRouter) Route(ctx context.Context, intent model.Intent) (RoutedResult, error) {
	var (
		payload Payload
		err     error
	)

	dates := datemath.ParseRange(intent.DateRange)

	switch intent.Kind {
	case model.IntentCustomer:
		payload, err = r.routeCustomer(ctx, intent, dates)
	case model.IntentProduct:
		payload, err = r.routeProduct(ctx, intent, dates)
	case model.IntentBusinessMetric:
		payload, err = r.routeBusinessMetric(ctx, intent, dates)
	default:
		return RoutedResult{}, &RoutingError{Kind: intent.Kind}
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %s fetch failed: %v", LogPrefixRoute, intent.Kind, err)
		return RoutedResult{}, fmt.Errorf("%s: %w", LogPrefixRoute, err)
	}

	metrics.RouterOutcomes.WithLabelValues(string(intent.Kind), string(payload.Outcome())).Inc()
	r.l.Debugf(ctx, "%s: %s -> %T (%s)", LogPrefixRoute, intent.Kind, payload, payload.Outcome())

	return RoutedResult{Intent: intent, Data: payload}, nil
}

func (r *QueryRouter) routeCustomer(ctx context.Context, intent model.Intent, dates datemath.Range) (Payload, error) {
	if intent.CustomerID == nil {
		return AmbiguousIntent{Status: StatusAmbiguousIntent, Reason: ReasonCustomerIDMissing}, nil
	}

	res, err := r.data.GetCustomer(ctx, *intent.CustomerID, dates)
	if err != nil {
		return nil, err
	}

	if len(res.Transactions) == 0 && res.Summary == nil {
		id := *intent.CustomerID
		return NoData{Status: StatusNoData, Reason: ReasonNoCustomerTransactions, CustomerID: &id}, nil
	}

	out := CustomerData{CustomerResult: *res}
	out.Transactions, out.TransactionWindow = trimTransactions(res.Transactions)
	return out, nil
}

func (r *QueryRouter) routeProduct(ctx context.Context, intent model.Intent, dates datemath.Range) (Payload, error) {
	if intent.ProductID == nil {
		return AmbiguousIntent{Status: StatusAmbiguousIntent, Reason: ReasonProductIDMissing}, nil
	}

	res, err := r.data.GetProduct(ctx, *intent.ProductID, dates)
	if err != nil {
		return nil, err
	}

	noData := func() (Payload, error) {
		id := *intent.ProductID
		return NoData{Status: StatusNoData, Reason: ReasonNoProductTransactions, ProductID: &id}, nil
	}

	if res.Summary == nil {
		return noData()
	}

	summary := ProductSummary{ProductSummary: *res.Summary}
	stores, total, truncated := trim(res.Summary.Stores, TrimLimit)
	summary.Stores = stores
	summary.StoreCount = total
	summary.StoresLimit = TrimLimit
	summary.StoresTruncated = truncated

	if summary.TransactionCount == 0 && summary.TotalQuantity == 0 && summary.TotalRevenue == 0 {
		return noData()
	}

	out := ProductData{
		ProductID: res.ProductID,
		Summary:   summary,
		Filters:   res.Filters,
	}
	out.Transactions, out.TransactionWindow = trimTransactions(res.Transactions)
	return out, nil
}
