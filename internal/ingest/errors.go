package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyFile = errors.New("csv file has no header")
)

// MissingColumnsError reports header columns the loader needs but did not find.
type MissingColumnsError struct {
	Missing []string
	Found   []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("csv is missing expected columns: %s; found: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// RowError reports a data row that could not be parsed. Row is 1-based and
// counts data rows only.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("failed to parse row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("failed to parse row %d column %s: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
