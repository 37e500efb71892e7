package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"retail-insights/internal/analytics/repository"
	"retail-insights/pkg/log"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Store is everything the SQLite repository implements.
type Store interface {
	repository.Repository
	repository.IngestRepository
}

// New creates a new SQLite-backed Repository for the analytics domain.
func New(db *sql.DB, l log.Logger) Store {
	if db == nil {
		panic("analytics/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Open opens the database file at path, creating its directory if needed.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return db, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("analytics/repository/sqlite.%s", method)
}
