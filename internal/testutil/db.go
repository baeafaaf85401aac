package testutil

import (
	"context"
	"testing"

	"github.com/leapstack-labs/wildlog/pkg/adapter"
	"github.com/leapstack-labs/wildlog/pkg/adapters/sqlite"
)

// NewMemoryAdapter connects a sqlite adapter to a private in-memory database.
// The adapter is closed when the test finishes.
func NewMemoryAdapter(t testing.TB) *sqlite.Adapter {
	t.Helper()

	adp := sqlite.New(NewTestLogger(t))
	if err := adp.Connect(context.Background(), adapter.Config{Type: "sqlite", Path: sqlite.MemoryPath}); err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = adp.Close() })

	return adp
}
