package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"retail-insights/internal/analytics"
	repo "retail-insights/internal/analytics/repository"
)

// GetOverallSummary returns store-wide KPIs for the range.
func (r *implRepository) GetOverallSummary(ctx context.Context, opt repo.RangeOptions) (analytics.OverallSummary, error) {
	where, args := r.buildRangeWhere(opt.Range)
	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			SUM(TotalAmount),
			COUNT(DISTINCT CustomerID),
			COUNT(DISTINCT ProductID),
			MIN(TransactionDate),
			MAX(TransactionDate)
		FROM transactions %s`, where)

	var (
		s           analytics.OverallSummary
		revenue     sql.NullFloat64
		first, last sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.TransactionCount, &revenue, &s.UniqueCustomers, &s.UniqueProducts, &first, &last,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOverallSummary"), err)
		return analytics.OverallSummary{}, repo.ErrFailedToAggregate
	}

	if revenue.Valid {
		s.TotalRevenue = &revenue.Float64
	}
	if first.Valid {
		s.FirstTransaction = &first.String
	}
	if last.Valid {
		s.LastTransaction = &last.String
	}
	return s, nil
}

// ListGroupMetrics returns totals grouped by a dimension, highest revenue first.
func (r *implRepository) ListGroupMetrics(ctx context.Context, opt repo.GroupOptions) ([]analytics.GroupMetric, error) {
	switch opt.Dimension {
	case repo.DimensionCategory, repo.DimensionPayment:
	default:
		return nil, repo.ErrInvalidOptions
	}

	where, args := r.buildRangeWhere(opt.Range)
	query := fmt.Sprintf(`
		SELECT
			%[1]s,
			COUNT(*) AS transactionCount,
			SUM(Quantity) AS totalQuantity,
			SUM(TotalAmount) AS totalRevenue
		FROM transactions %[2]s
		GROUP BY %[1]s
		ORDER BY totalRevenue DESC`, opt.Dimension, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListGroupMetrics"), err)
		return nil, repo.ErrFailedToAggregate
	}
	defer rows.Close()

	metrics := []analytics.GroupMetric{}
	for rows.Next() {
		var m analytics.GroupMetric
		if err := rows.Scan(&m.Key, &m.TransactionCount, &m.TotalQuantity, &m.TotalRevenue); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListGroupMetrics"), err)
			return nil, repo.ErrFailedToAggregate
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToAggregate
	}
	return metrics, nil
}

// ListTopCustomers ranks customers by revenue.
func (r *implRepository) ListTopCustomers(ctx context.Context, opt repo.TopOptions) ([]analytics.RankedCustomer, error) {
	where, args := r.buildRangeWhere(opt.Range)
	query := fmt.Sprintf(`
		SELECT
			CustomerID,
			COUNT(*) AS transactionCount,
			SUM(TotalAmount) AS totalRevenue
		FROM transactions %s
		GROUP BY CustomerID
		ORDER BY totalRevenue DESC
		LIMIT ?`, where)
	args = append(args, opt.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTopCustomers"), err)
		return nil, repo.ErrFailedToAggregate
	}
	defer rows.Close()

	out := []analytics.RankedCustomer{}
	for rows.Next() {
		var c analytics.RankedCustomer
		if err := rows.Scan(&c.CustomerID, &c.TransactionCount, &c.TotalRevenue); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTopCustomers"), err)
			return nil, repo.ErrFailedToAggregate
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToAggregate
	}
	return out, nil
}

// ListTopProducts ranks products by revenue, then quantity.
func (r *implRepository) ListTopProducts(ctx context.Context, opt repo.TopOptions) ([]analytics.RankedProduct, error) {
	where, args := r.buildRangeWhere(opt.Range)
	query := fmt.Sprintf(`
		SELECT
			ProductID,
			COUNT(*) AS transactionCount,
			SUM(Quantity) AS totalQuantity,
			SUM(TotalAmount) AS totalRevenue
		FROM transactions %s
		GROUP BY ProductID
		ORDER BY totalRevenue DESC, totalQuantity DESC
		LIMIT ?`, where)
	args = append(args, opt.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTopProducts"), err)
		return nil, repo.ErrFailedToAggregate
	}
	defer rows.Close()

	out := []analytics.RankedProduct{}
	for rows.Next() {
		var p analytics.RankedProduct
		if err := rows.Scan(&p.ProductID, &p.TransactionCount, &p.TotalQuantity, &p.TotalRevenue); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTopProducts"), err)
			return nil, repo.ErrFailedToAggregate
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToAggregate
	}
	return out, nil
}
