package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"retail-insights/internal/model"
	"retail-insights/pkg/datemath"
)

// Load resets the schema and inserts every row read from r. It returns the
// number of rows inserted. Rows committed before a parse failure stay in place.
func (ld *Loader) Load(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, ErrEmptyFile
	}
	if err != nil {
		return 0, fmt.Errorf("%s: read header: %w", LogPrefixLoad, err)
	}

	index, err := indexHeader(header)
	if err != nil {
		return 0, err
	}

	if err := ld.repo.ResetSchema(ctx); err != nil {
		return 0, err
	}

	var (
		batch = make([]model.Transaction, 0, ld.batchSize)
		total int
		row   int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ld.repo.InsertTransactions(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		ld.l.Infof(ctx, "%s: inserted %d rows...", LogPrefixLoad, total)
		return nil
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			return total, &RowError{Row: row, Err: err}
		}

		t, err := parseRecord(record, index)
		if err != nil {
			var rowErr *RowError
			if errors.As(err, &rowErr) {
				rowErr.Row = row
			}
			return total, err
		}

		batch = append(batch, t)
		if len(batch) >= ld.batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}

	if err := flush(); err != nil {
		return total, err
	}

	ld.l.Infof(ctx, "%s: finished inserting %d rows into transactions", LogPrefixLoad, total)
	return total, nil
}

func indexHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		// Spreadsheet exports often prefix the first column with a BOM.
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[name] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing, Found: header}
	}
	return index, nil
}

// parseRecord converts one CSV record. The returned RowError has Row unset.
func parseRecord(record []string, index map[string]int) (model.Transaction, error) {
	var (
		t   model.Transaction
		err error
	)

	field := func(col string) (string, error) {
		i := index[col]
		if i >= len(record) {
			return "", &RowError{Column: col, Err: errors.New("missing field")}
		}
		return strings.TrimSpace(record[i]), nil
	}

	parseInt := func(col string) (int64, error) {
		v, err := field(col)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, &RowError{Column: col, Err: err}
		}
		return n, nil
	}

	parseFloat := func(col string) (float64, error) {
		v, err := field(col)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, &RowError{Column: col, Err: err}
		}
		return f, nil
	}

	if t.CustomerID, err = parseInt(ColCustomerID); err != nil {
		return t, err
	}
	if t.ProductID, err = field(ColProductID); err != nil {
		return t, err
	}
	if t.Quantity, err = parseInt(ColQuantity); err != nil {
		return t, err
	}
	if t.Price, err = parseFloat(ColPrice); err != nil {
		return t, err
	}

	rawDate, err := field(ColTransactionDate)
	if err != nil {
		return t, err
	}
	if t.TransactionDate, err = datemath.NormalizeTimestamp(rawDate); err != nil {
		return t, &RowError{Column: ColTransactionDate, Err: err}
	}

	if t.PaymentMethod, err = field(ColPaymentMethod); err != nil {
		return t, err
	}
	if t.StoreLocation, err = field(ColStoreLocation); err != nil {
		return t, err
	}
	if t.ProductCategory, err = field(ColProductCategory); err != nil {
		return t, err
	}
	if t.DiscountAppliedPct, err = parseFloat(ColDiscountApplied); err != nil {
		return t, err
	}
	if t.TotalAmount, err = parseFloat(ColTotalAmount); err != nil {
		return t, err
	}

	return t, nil
}
