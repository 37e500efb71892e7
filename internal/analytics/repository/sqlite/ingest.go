package sqlite

import (
	"context"
	"fmt"

	repo "retail-insights/internal/analytics/repository"
	"retail-insights/internal/model"
)

var schemaStatements = []string{
	`DROP TABLE IF EXISTS transactions`,
	`CREATE TABLE transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		CustomerID INTEGER NOT NULL,
		ProductID TEXT NOT NULL,
		Quantity INTEGER NOT NULL,
		Price REAL NOT NULL,
		TransactionDate TEXT NOT NULL,
		PaymentMethod TEXT NOT NULL,
		StoreLocation TEXT NOT NULL,
		ProductCategory TEXT NOT NULL,
		DiscountAppliedPct REAL NOT NULL,
		TotalAmount REAL NOT NULL
	)`,
	`CREATE INDEX idx_transactions_customer ON transactions(CustomerID)`,
	`CREATE INDEX idx_transactions_product ON transactions(ProductID)`,
	`CREATE INDEX idx_transactions_date ON transactions(TransactionDate)`,
	`CREATE INDEX idx_transactions_category ON transactions(ProductCategory)`,
	`CREATE INDEX idx_transactions_payment ON transactions(PaymentMethod)`,
}

const insertTransaction = `
	INSERT INTO transactions (
		CustomerID, ProductID, Quantity, Price, TransactionDate,
		PaymentMethod, StoreLocation, ProductCategory, DiscountAppliedPct, TotalAmount
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// ResetSchema drops and recreates the transactions table and its indexes.
func (r *implRepository) ResetSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ResetSchema"), err)
			return fmt.Errorf("%w: %v", repo.ErrFailedToMigrate, err)
		}
	}
	return nil
}

// InsertTransactions writes txs in a single transaction. IDs are assigned by the database.
func (r *implRepository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("InsertTransactions"), err)
		return repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertTransaction)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("InsertTransactions"), err)
		return repo.ErrFailedToInsert
	}
	defer stmt.Close()

	for _, t := range txs {
		if _, err := stmt.ExecContext(ctx,
			t.CustomerID, t.ProductID, t.Quantity, t.Price, t.TransactionDate,
			t.PaymentMethod, t.StoreLocation, t.ProductCategory, t.DiscountAppliedPct, t.TotalAmount,
		); err != nil {
			r.l.Errorf(ctx, "%s exec: %v", r.dsn("InsertTransactions"), err)
			return repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("InsertTransactions"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
