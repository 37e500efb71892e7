package router

import (
	"slices"

	"retail-insights/pkg/retailapi"
)

// trim keeps the first limit items. It returns the kept items, the original
// length and whether anything was dropped. The result is never nil.
func trim[T any](items []T, limit int) ([]T, int, bool) {
	total := len(items)
	if total > limit {
		return slices.Clone(items[:limit]), total, true
	}
	if items == nil {
		return []T{}, 0, false
	}
	return slices.Clone(items), total, false
}

func trimTransactions(txs []retailapi.Transaction) ([]retailapi.Transaction, TransactionWindow) {
	kept, total, truncated := trim(txs, TrimLimit)
	return kept, TransactionWindow{
		TransactionCount:      total,
		TransactionsLimit:     TrimLimit,
		TransactionsTruncated: truncated,
	}
}
