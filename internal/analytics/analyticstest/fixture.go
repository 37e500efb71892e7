// Package analyticstest provides a small seeded SQLite database for tests.
package analyticstest

import (
	"context"
	"database/sql"
	"testing"

	"retail-insights/internal/analytics/repository/sqlite"
	"retail-insights/internal/model"
	"retail-insights/pkg/log"
)

// Transactions is the seed data: customer 1 has two purchases (20.0 and 4.5),
// customer 2 has one. Product A sells in Store 1 only.
func Transactions() []model.Transaction {
	return []model.Transaction{
		{CustomerID: 1, ProductID: "A", Quantity: 2, Price: 10.0, TransactionDate: "2024-01-15 12:00",
			PaymentMethod: "Cash", StoreLocation: "Store 1", ProductCategory: "Books", DiscountAppliedPct: 0.0, TotalAmount: 20.0},
		{CustomerID: 1, ProductID: "B", Quantity: 1, Price: 5.0, TransactionDate: "2024-02-01 09:00",
			PaymentMethod: "Card", StoreLocation: "Store 2", ProductCategory: "Electronics", DiscountAppliedPct: 10.0, TotalAmount: 4.5},
		{CustomerID: 2, ProductID: "A", Quantity: 3, Price: 10.0, TransactionDate: "2024-01-20 14:00",
			PaymentMethod: "PayPal", StoreLocation: "Store 1", ProductCategory: "Books", DiscountAppliedPct: 0.0, TotalAmount: 30.0},
	}
}

// NewDB opens an in-memory database seeded with Transactions.
// The pool is pinned to one connection so every query sees the same memory database.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open(sqlite.DriverName, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store := sqlite.New(db, log.NewNop())
	ctx := context.Background()
	if err := store.ResetSchema(ctx); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if err := store.InsertTransactions(ctx, Transactions()); err != nil {
		t.Fatalf("seed transactions: %v", err)
	}
	return db
}
