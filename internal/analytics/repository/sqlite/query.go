package sqlite

import (
	"strings"

	repo "retail-insights/internal/analytics/repository"
	"retail-insights/pkg/datemath"
)

const transactionColumns = `id, CustomerID, ProductID, Quantity, Price, TransactionDate,
	PaymentMethod, StoreLocation, ProductCategory, DiscountAppliedPct, TotalAmount`

// buildRangeConditions turns a date range into TransactionDate bounds.
// Stored dates are "YYYY-MM-DD HH:MM" so both ends are padded to whole days.
func (r *implRepository) buildRangeConditions(rg datemath.Range) ([]string, []any) {
	var conditions []string
	var args []any

	if rg.From != nil && *rg.From != "" {
		conditions = append(conditions, "TransactionDate >= ?")
		args = append(args, datemath.LowerBound(*rg.From))
	}
	if rg.To != nil && *rg.To != "" {
		conditions = append(conditions, "TransactionDate <= ?")
		args = append(args, datemath.UpperBound(*rg.To))
	}
	return conditions, args
}

// buildEntityWhere builds the WHERE clause for a single customer or product.
func (r *implRepository) buildEntityWhere(opt repo.ListTransactionsOptions) (string, []any, error) {
	var conditions []string
	var args []any

	switch {
	case opt.CustomerID != nil:
		conditions = append(conditions, "CustomerID = ?")
		args = append(args, *opt.CustomerID)
	case opt.ProductID != nil:
		conditions = append(conditions, "ProductID = ?")
		args = append(args, *opt.ProductID)
	default:
		return "", nil, repo.ErrInvalidOptions
	}

	rangeConds, rangeArgs := r.buildRangeConditions(opt.Range)
	conditions = append(conditions, rangeConds...)
	args = append(args, rangeArgs...)

	return "WHERE " + strings.Join(conditions, " AND "), args, nil
}

// buildRangeWhere builds the WHERE clause for store-wide queries; empty when unbounded.
func (r *implRepository) buildRangeWhere(rg datemath.Range) (string, []any) {
	conditions, args := r.buildRangeConditions(rg)
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
