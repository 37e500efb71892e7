package usecase

import (
	"context"

	"retail-insights/internal/analytics"
	repo "retail-insights/internal/analytics/repository"
)

// Summary returns store-wide KPIs.
func (uc *implUseCase) Summary(ctx context.Context, input analytics.RangeInput) (analytics.SummaryOutput, error) {
	s, err := uc.repo.GetOverallSummary(ctx, repo.RangeOptions{Range: input.Range})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary GetOverallSummary: %v", err)
		return analytics.SummaryOutput{}, err
	}
	return analytics.SummaryOutput{Summary: s, Range: input.Range}, nil
}

// ByCategory returns totals per product category.
func (uc *implUseCase) ByCategory(ctx context.Context, input analytics.RangeInput) (analytics.GroupOutput, error) {
	return uc.groupBy(ctx, repo.DimensionCategory, input)
}

// ByPayment returns totals per payment method.
func (uc *implUseCase) ByPayment(ctx context.Context, input analytics.RangeInput) (analytics.GroupOutput, error) {
	return uc.groupBy(ctx, repo.DimensionPayment, input)
}

func (uc *implUseCase) groupBy(ctx context.Context, dim repo.Dimension, input analytics.RangeInput) (analytics.GroupOutput, error) {
	metrics, err := uc.repo.ListGroupMetrics(ctx, repo.GroupOptions{Dimension: dim, Range: input.Range})
	if err != nil {
		uc.l.Errorf(ctx, "uc.groupBy %s: %v", dim, err)
		return analytics.GroupOutput{}, err
	}
	return analytics.GroupOutput{Metrics: metrics, Range: input.Range}, nil
}

// TopCustomers ranks customers by revenue.
func (uc *implUseCase) TopCustomers(ctx context.Context, input analytics.TopInput) (analytics.TopCustomersOutput, error) {
	window := clampLimit(input.RequestedLimit)

	metrics, err := uc.repo.ListTopCustomers(ctx, repo.TopOptions{Limit: window.Limit, Range: input.Range})
	if err != nil {
		uc.l.Errorf(ctx, "uc.TopCustomers ListTopCustomers: %v", err)
		return analytics.TopCustomersOutput{}, err
	}
	return analytics.TopCustomersOutput{LimitWindow: window, Metrics: metrics, Range: input.Range}, nil
}

// TopProducts ranks products by revenue, then quantity.
func (uc *implUseCase) TopProducts(ctx context.Context, input analytics.TopInput) (analytics.TopProductsOutput, error) {
	window := clampLimit(input.RequestedLimit)

	metrics, err := uc.repo.ListTopProducts(ctx, repo.TopOptions{Limit: window.Limit, Range: input.Range})
	if err != nil {
		uc.l.Errorf(ctx, "uc.TopProducts ListTopProducts: %v", err)
		return analytics.TopProductsOutput{}, err
	}
	return analytics.TopProductsOutput{LimitWindow: window, Metrics: metrics, Range: input.Range}, nil
}

// clampLimit bounds a requested ranking size to [1, MaxTopLimit].
func clampLimit(requested int) analytics.LimitWindow {
	return analytics.LimitWindow{
		Limit:     max(1, min(requested, analytics.MaxTopLimit)),
		Requested: requested,
		Capped:    requested > analytics.MaxTopLimit,
	}
}
