package ingest

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insights/internal/analytics/repository/sqlite"
	"retail-insights/internal/model"
	"retail-insights/pkg/log"
)

const header = "CustomerID,ProductID,Quantity,Price,TransactionDate,PaymentMethod,StoreLocation,ProductCategory,DiscountApplied(%),TotalAmount\n"

type recordingRepo struct {
	resets  int
	batches [][]model.Transaction
	failOn  int
}

func (r *recordingRepo) ResetSchema(context.Context) error {
	r.resets++
	return nil
}

func (r *recordingRepo) InsertTransactions(_ context.Context, txs []model.Transaction) error {
	if r.failOn > 0 && len(r.batches)+1 == r.failOn {
		return errors.New("disk full")
	}
	r.batches = append(r.batches, append([]model.Transaction(nil), txs...))
	return nil
}

func TestLoad_ParsesAndNormalizes(t *testing.T) {
	csvData := header +
		"109318,C,7,80.08,12/26/2023 12:32,Cash,\"176 Andrew Cliffs\nBaileyfort, HI 93354\",Books,18.68,455.86\n" +
		"993229,A, 3 ,10.5,8/5/2023 0:00,PayPal,Store 2,Electronics,0,31.5\n"

	r := &recordingRepo{}
	n, err := New(r, log.NewNop()).Load(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, r.resets)
	require.Len(t, r.batches, 1)

	first := r.batches[0][0]
	assert.Equal(t, int64(109318), first.CustomerID)
	assert.Equal(t, "2023-12-26 12:32", first.TransactionDate)
	assert.Equal(t, "176 Andrew Cliffs\nBaileyfort, HI 93354", first.StoreLocation)
	assert.InDelta(t, 18.68, first.DiscountAppliedPct, 1e-9)

	second := r.batches[0][1]
	assert.Equal(t, int64(3), second.Quantity)
	assert.Equal(t, "2023-08-05 00:00", second.TransactionDate)
}

func TestLoad_Batches(t *testing.T) {
	var b strings.Builder
	b.WriteString(header)
	for i := 0; i < 5; i++ {
		b.WriteString("1,A,1,1.0,1/1/2024 10:00,Cash,Store 1,Books,0,1.0\n")
	}

	r := &recordingRepo{}
	n, err := New(r, log.NewNop()).WithBatchSize(2).Load(context.Background(), strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.Len(t, r.batches, 3)
	assert.Len(t, r.batches[2], 1)
}

func TestLoad_MissingColumns(t *testing.T) {
	r := &recordingRepo{}
	_, err := New(r, log.NewNop()).Load(context.Background(), strings.NewReader("CustomerID,ProductID\n1,A\n"))

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Missing, ColTotalAmount)
	assert.NotContains(t, missing.Missing, ColCustomerID)
	assert.Zero(t, r.resets)
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := New(&recordingRepo{}, log.NewNop()).Load(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoad_BadRowReportsRowNumber(t *testing.T) {
	csvData := header +
		"1,A,1,1.0,1/1/2024 10:00,Cash,Store 1,Books,0,1.0\n" +
		"2,B,1,1.0,2024-01-01,Cash,Store 1,Books,0,1.0\n"

	_, err := New(&recordingRepo{}, log.NewNop()).Load(context.Background(), strings.NewReader(csvData))

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, ColTransactionDate, rowErr.Column)
}

func TestLoad_InsertFailure(t *testing.T) {
	csvData := header + "1,A,1,1.0,1/1/2024 10:00,Cash,Store 1,Books,0,1.0\n"

	n, err := New(&recordingRepo{failOn: 1}, log.NewNop()).Load(context.Background(), strings.NewReader(csvData))
	require.Error(t, err)
	assert.Zero(t, n)
}

func TestLoad_IntoSQLite(t *testing.T) {
	db, err := sql.Open(sqlite.DriverName, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	csvData := header +
		"7,A,2,10.0,1/15/2024 12:00,Cash,Store 1,Books,0,20.0\n" +
		"7,B,1,5.0,2/1/2024 9:00,Card,Store 2,Electronics,10,4.5\n"

	n, err := New(sqlite.New(db, log.NewNop()), log.NewNop()).Load(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var (
		count int
		total float64
	)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*), SUM(TotalAmount) FROM transactions WHERE CustomerID = 7`).Scan(&count, &total))
	assert.Equal(t, 2, count)
	assert.InDelta(t, 24.5, total, 1e-9)
}
