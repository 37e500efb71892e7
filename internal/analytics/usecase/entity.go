package usecase

import (
	"context"
	"strings"

	"retail-insights/internal/analytics"
	repo "retail-insights/internal/analytics/repository"
)

// CustomerHistory returns a customer's transactions and, when there are any, their summary.
func (uc *implUseCase) CustomerHistory(ctx context.Context, input analytics.CustomerInput) (analytics.CustomerOutput, error) {
	if input.CustomerID < 0 {
		return analytics.CustomerOutput{}, analytics.ErrInvalidCustomerID
	}

	id := input.CustomerID
	opt := repo.ListTransactionsOptions{CustomerID: &id, Range: input.Range}

	txs, err := uc.repo.ListTransactions(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CustomerHistory ListTransactions: %v", err)
		return analytics.CustomerOutput{}, err
	}

	out := analytics.CustomerOutput{
		CustomerID:   input.CustomerID,
		Transactions: txs,
		Range:        input.Range,
	}
	if len(txs) == 0 {
		return out, nil
	}

	summary, err := uc.repo.GetCustomerSummary(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CustomerHistory GetCustomerSummary: %v", err)
		return analytics.CustomerOutput{}, err
	}
	out.Summary = &summary
	return out, nil
}

// ProductDetail returns a product's transactions, aggregates and stores.
func (uc *implUseCase) ProductDetail(ctx context.Context, input analytics.ProductInput) (analytics.ProductOutput, error) {
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return analytics.ProductOutput{}, analytics.ErrInvalidProductID
	}

	opt := repo.ListTransactionsOptions{ProductID: &productID, Range: input.Range}

	txs, err := uc.repo.ListTransactions(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProductDetail ListTransactions: %v", err)
		return analytics.ProductOutput{}, err
	}

	out := analytics.ProductOutput{
		ProductID:    productID,
		Transactions: txs,
		Range:        input.Range,
	}
	if len(txs) == 0 {
		return out, nil
	}

	summary, err := uc.repo.GetProductSummary(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProductDetail GetProductSummary: %v", err)
		return analytics.ProductOutput{}, err
	}

	stores, err := uc.repo.ListStores(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProductDetail ListStores: %v", err)
		return analytics.ProductOutput{}, err
	}
	summary.Stores = stores

	out.Summary = &summary
	return out, nil
}
