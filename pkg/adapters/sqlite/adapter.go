// Package sqlite provides an embedded SQLite store adapter for wildlog,
// used for local development and tests.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/leapstack-labs/wildlog/pkg/adapter"
	"github.com/leapstack-labs/wildlog/pkg/dialect"
	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// MemoryPath selects a private in-memory database.
const MemoryPath = ":memory:"

// Adapter implements the adapter.Adapter interface for SQLite.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQLite adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the SQL dialect for this adapter.
func (a *Adapter) Dialect() *dialect.Dialect {
	return dialect.SQLite
}

// Connect opens the database file named by cfg.DSN, cfg.Path or cfg.Database.
// An empty path opens an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	dsn := buildSQLiteDSN(cfg)

	a.Logger.Debug("opening sqlite database", slog.String("dsn", dsn))

	if err := a.OpenAndPing(ctx, "sqlite", dsn); err != nil {
		return err
	}

	// Every pooled connection to :memory: sees its own empty database, and
	// sqlite serializes writers anyway.
	a.DB.SetMaxOpenConns(1)
	a.DB.SetMaxIdleConns(1)
	a.DB.SetConnMaxIdleTime(5 * time.Minute)

	a.Cfg = cfg
	return nil
}

// buildSQLiteDSN constructs a modernc.org/sqlite DSN.
func buildSQLiteDSN(cfg adapter.Config) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	path := cfg.Path
	if path == "" {
		path = cfg.Database
	}
	if path == "" || path == MemoryPath {
		return MemoryPath
	}

	// - _pragma=busy_timeout sets a lock wait
	// - _pragma=journal_mode(WAL) enables the write-ahead log
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", filepath.Clean(path))
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
