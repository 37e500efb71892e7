package router

import (
	"context"
	"slices"
	"strings"

	"retail-insights/internal/model"
	"retail-insights/pkg/datemath"
)

// NormalizeMetric trims and lowercases a metric name.
func NormalizeMetric(metric *string) string {
	if metric == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*metric))
}

// LookupOperation resolves a normalized metric name through the synonym table.
func LookupOperation(normalized string) (Operation, bool) {
	op, ok := metricSynonyms[normalized]
	return op, ok
}

func isUnsupportedBreakdown(normalized string) bool {
	for _, marker := range unsupportedMetricMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}

func (r *QueryRouter) routeBusinessMetric(ctx context.Context, intent model.Intent, dates datemath.Range) (Payload, error) {
	metric := NormalizeMetric(intent.Metric)

	if metric == "" {
		return AmbiguousIntent{
			Status:           StatusAmbiguousIntent,
			Reason:           ReasonBusinessMetricUnspecified,
			SupportedMetrics: slices.Clone(SupportedMetrics),
		}, nil
	}

	// Checked before synonyms so "store_revenue" never resolves to revenue.
	if isUnsupportedBreakdown(metric) {
		return UnsupportedMetric{
			Status:           StatusUnsupportedMetric,
			Reason:           ReasonMetricNotSupported,
			RequestedMetric:  *intent.Metric,
			SupportedMetrics: slices.Clone(SupportedMetrics),
		}, nil
	}

	op, ok := LookupOperation(metric)
	if !ok {
		return UnsupportedMetric{
			Status:           StatusUnsupportedMetric,
			Reason:           ReasonMetricNotRecognized,
			RequestedMetric:  *intent.Metric,
			SupportedMetrics: slices.Clone(SupportedMetrics),
		}, nil
	}

	switch op {
	case OpSummary:
		res, err := r.data.GetSummary(ctx, dates)
		if err != nil {
			return nil, err
		}
		return SummaryData(*res), nil

	case OpByCategory:
		res, err := r.data.GetByCategory(ctx, dates)
		if err != nil {
			return nil, err
		}
		return CategoryData(*res), nil

	case OpByPayment:
		res, err := r.data.GetByPayment(ctx, dates)
		if err != nil {
			return nil, err
		}
		return PaymentData(*res), nil

	case OpTopCustomers:
		limit, requested, capped := topNLimit(intent.TopN)
		res, err := r.data.GetTopCustomers(ctx, limit, dates)
		if err != nil {
			return nil, err
		}
		out := TopCustomersData(*res)
		if capped {
			out.LimitRequested = &requested
			out.LimitApplied = intPtr(TopNMax)
		}
		return out, nil

	default: // OpTopProducts
		limit, requested, capped := topNLimit(intent.TopN)
		res, err := r.data.GetTopProducts(ctx, limit, dates)
		if err != nil {
			return nil, err
		}
		out := TopProductsData(*res)
		if capped {
			out.LimitRequested = &requested
			out.LimitApplied = intPtr(TopNMax)
		}
		return out, nil
	}
}

// topNLimit returns the limit to fetch with, the requested value and whether
// the request exceeded TopNMax.
func topNLimit(topN *int) (limit, requested int, capped bool) {
	requested = TopNDefault
	if topN != nil {
		requested = *topN
	}
	limit = min(requested, TopNMax)
	return limit, requested, topN != nil && *topN > TopNMax
}

func intPtr(v int) *int { return &v }
