// Package adapter provides the database adapter contract and the shared
// database/sql plumbing for wildlog's store backends.
//
// Concrete adapter implementations are in pkg/adapters/ subdirectories and
// register themselves from init(). Import them with a blank identifier:
//
//	import _ "github.com/leapstack-labs/wildlog/pkg/adapters/postgres"
package adapter

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/wildlog/pkg/core"
	"github.com/leapstack-labs/wildlog/pkg/dialect"
)

// Config is an alias for core.AdapterConfig.
type Config = core.AdapterConfig

// Adapter defines the interface that all database adapters must implement.
type Adapter interface {
	// Connect opens the connection pool and verifies it with a ping.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection pool and releases resources.
	Close() error

	// Handle returns the shared connection pool, nil before Connect.
	Handle() *sql.DB

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error

	// Dialect returns the SQL dialect spoken by this adapter.
	Dialect() *dialect.Dialect
}
