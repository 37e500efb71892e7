package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insights/internal/analytics/repository/sqlite"
	"retail-insights/pkg/log"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "tx.csv")
	dbPath := filepath.Join(dir, "nested", "retail.db")

	csvData := "CustomerID,ProductID,Quantity,Price,TransactionDate,PaymentMethod,StoreLocation,ProductCategory,DiscountApplied(%),TotalAmount\n" +
		"1,A,2,10.0,1/15/2024 12:00,Cash,Store 1,Books,0,20.0\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csvData), 0o644))

	require.NoError(t, run(context.Background(), log.NewNop(), csvPath, dbPath, 100))

	db, err := sql.Open(sqlite.DriverName, dbPath)
	require.NoError(t, err)
	defer db.Close()

	var date string
	require.NoError(t, db.QueryRow(`SELECT TransactionDate FROM transactions`).Scan(&date))
	assert.Equal(t, "2024-01-15 12:00", date)
}

func TestRun_MissingCSV(t *testing.T) {
	dir := t.TempDir()
	err := run(context.Background(), log.NewNop(), filepath.Join(dir, "nope.csv"), filepath.Join(dir, "retail.db"), 100)
	assert.ErrorContains(t, err, "csv file not found")
}
