// FilePath: server/telemetry/internal/repository/repository.go
package repository

import (
	"context"
	"strings"
)

// Statement is a fully parameterized SQL statement
type Statement struct {
	Query string
	Args  []any
}

// String returns the query with whitespace collapsed, for logs and tests
func (s Statement) String() string {
	return strings.Join(strings.Fields(s.Query), " ")
}

//go:generate moq -rm -out storage_mock.go . StoragePort

// StoragePort is the narrow read/write boundary over the time-series store.
// Implementations must be safe for concurrent use.
type StoragePort interface {
	// Execute persists one or more records. A single call must be atomic.
	Execute(ctx context.Context, stmt Statement) error
	// Query runs a bounded read and scans the ordered rows into dest,
	// which is a pointer to a slice (or to a struct for single-row reads).
	Query(ctx context.Context, dest any, stmt Statement) error
}
