package datemath

import (
	"fmt"
	"strings"
	"time"
)

const (
	// RangeSeparator splits "YYYY-MM-DD..YYYY-MM-DD".
	RangeSeparator = ".."

	// DateLayout is the calendar date format used in filters.
	DateLayout = "2006-01-02"
	// TimestampLayout is how transaction times are stored.
	TimestampLayout = "2006-01-02 15:04"
	// CSVTimestampLayout is the source dataset format, e.g. "1/31/2024 9:05".
	CSVTimestampLayout = "1/2/2006 15:04"

	dayStart = "00:00"
	dayEnd   = "23:59"
)

// ParseRange interprets a date_range string.
// Only the "<from>..<to>" form is understood: the text is split on the first
// separator and each trimmed side becomes a bound, an empty side leaves that
// bound open. Nil, blank or any other form yields an empty Range.
func ParseRange(raw *string) Range {
	if raw == nil {
		return Range{}
	}

	from, to, found := strings.Cut(*raw, RangeSeparator)
	if !found {
		return Range{}
	}

	return Range{
		From: nonEmpty(strings.TrimSpace(from)),
		To:   nonEmpty(strings.TrimSpace(to)),
	}
}

// LowerBound pads a calendar date to the first minute of that day so that it
// compares correctly against stored timestamps.
func LowerBound(date string) string {
	return date + " " + dayStart
}

// UpperBound pads a calendar date to the last minute of that day.
func UpperBound(date string) string {
	return date + " " + dayEnd
}

// NormalizeTimestamp converts a dataset timestamp ("M/D/YYYY H:MM") into the
// stored "YYYY-MM-DD HH:MM" form.
func NormalizeTimestamp(raw string) (string, error) {
	t, err := time.Parse(CSVTimestampLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid transaction date %q: %w", raw, err)
	}
	return t.Format(TimestampLayout), nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
