package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"retail-insights/internal/analytics"
	repo "retail-insights/internal/analytics/repository"
	"retail-insights/internal/model"
)

// ListTransactions returns an entity's transactions, oldest first.
func (r *implRepository) ListTransactions(ctx context.Context, opt repo.ListTransactionsOptions) ([]model.Transaction, error) {
	where, args, err := r.buildEntityWhere(opt)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions %s ORDER BY TransactionDate ASC`, transactionColumns, where)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTransactions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	txs := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(
			&t.ID, &t.CustomerID, &t.ProductID, &t.Quantity, &t.Price, &t.TransactionDate,
			&t.PaymentMethod, &t.StoreLocation, &t.ProductCategory, &t.DiscountAppliedPct, &t.TotalAmount,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTransactions"), err)
			return nil, repo.ErrFailedToList
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTransactions"), err)
		return nil, repo.ErrFailedToList
	}
	return txs, nil
}

// GetCustomerSummary aggregates a customer's spend.
func (r *implRepository) GetCustomerSummary(ctx context.Context, opt repo.ListTransactionsOptions) (analytics.CustomerSummary, error) {
	where, args, err := r.buildEntityWhere(opt)
	if err != nil {
		return analytics.CustomerSummary{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COALESCE(SUM(TotalAmount), 0),
			MIN(TransactionDate),
			MAX(TransactionDate)
		FROM transactions %s`, where)

	var (
		s           analytics.CustomerSummary
		first, last sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.TransactionCount, &s.TotalSpend, &first, &last); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCustomerSummary"), err)
		return analytics.CustomerSummary{}, repo.ErrFailedToAggregate
	}
	s.FirstTransaction = first.String
	s.LastTransaction = last.String
	return s, nil
}

// GetProductSummary aggregates a product's sales. Stores are filled by ListStores.
func (r *implRepository) GetProductSummary(ctx context.Context, opt repo.ListTransactionsOptions) (analytics.ProductSummary, error) {
	where, args, err := r.buildEntityWhere(opt)
	if err != nil {
		return analytics.ProductSummary{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COALESCE(SUM(Quantity), 0),
			COALESCE(SUM(TotalAmount), 0),
			COUNT(DISTINCT CustomerID),
			COALESCE(AVG(DiscountAppliedPct), 0)
		FROM transactions %s`, where)

	var s analytics.ProductSummary
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.TransactionCount, &s.TotalQuantity, &s.TotalRevenue, &s.UniqueCustomers, &s.AverageDiscountPct,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProductSummary"), err)
		return analytics.ProductSummary{}, repo.ErrFailedToAggregate
	}
	return s, nil
}

// ListStores returns the distinct store locations, sorted.
func (r *implRepository) ListStores(ctx context.Context, opt repo.ListTransactionsOptions) ([]string, error) {
	where, args, err := r.buildEntityWhere(opt)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT DISTINCT StoreLocation FROM transactions %s ORDER BY StoreLocation`, where)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListStores"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	stores := []string{}
	for rows.Next() {
		var store string
		if err := rows.Scan(&store); err != nil {
			return nil, repo.ErrFailedToList
		}
		stores = append(stores, store)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListStores"), err)
		return nil, repo.ErrFailedToList
	}
	return stores, nil
}
