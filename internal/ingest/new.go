package ingest

import (
	repo "retail-insights/internal/analytics/repository"
	"retail-insights/pkg/log"
)

// Loader rebuilds the transactions table from a CSV export.
type Loader struct {
	repo      repo.IngestRepository
	l         log.Logger
	batchSize int
}

// New creates a Loader writing through r.
func New(r repo.IngestRepository, l log.Logger) *Loader {
	return &Loader{
		repo:      r,
		l:         l,
		batchSize: DefaultBatchSize,
	}
}

// WithBatchSize overrides the number of rows committed per transaction.
func (ld *Loader) WithBatchSize(n int) *Loader {
	if n > 0 {
		ld.batchSize = n
	}
	return ld
}
