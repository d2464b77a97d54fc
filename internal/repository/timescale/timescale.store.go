// FilePath: server/telemetry/internal/repository/timescale/timescale.store.go
package timescale

import (
	"context"
	"fmt"
	"reflect"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/database"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/repository"
)

// Postgres caps bind parameters per statement; callers chunk larger batches
const MaxParameters = 65535

// Store implements repository.StoragePort on a TimescaleDB pool
type Store struct {
	TimeScaleBaseRepo
}

var _ repository.StoragePort = (*Store)(nil)

func NewStore(db database.DB) *Store {
	return &Store{TimeScaleBaseRepo{db: db}}
}

// Execute runs one write statement. A multi-row INSERT is a single
// statement, so either every row is stored or none is.
func (s *Store) Execute(ctx context.Context, stmt repository.Statement) error {
	if len(stmt.Args) > MaxParameters {
		return fmt.Errorf("statement has %d parameters, limit is %d", len(stmt.Args), MaxParameters)
	}
	_, err := s.ExecContext(ctx, stmt.Query, stmt.Args...)
	return err
}

// Query scans all rows into a slice destination, or exactly one row into a struct destination
func (s *Store) Query(ctx context.Context, dest any, stmt repository.Statement) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("query destination must be a non-nil pointer, got %T", dest)
	}
	if v.Elem().Kind() == reflect.Slice {
		return s.SelectContext(ctx, dest, stmt.Query, stmt.Args...)
	}
	return s.GetContext(ctx, dest, stmt.Query, stmt.Args...)
}
