package timescale

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/database"
)

type TimeScaleBaseRepo struct {
	db database.DB
}

func (r *TimeScaleBaseRepo) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := r.db.GetDB().ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute statement: %w", err)
	}
	return result, nil
}
func (r *TimeScaleBaseRepo) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := r.db.GetDB().SelectContext(ctx, dest, query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}
func (r *TimeScaleBaseRepo) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := r.db.GetDB().GetContext(ctx, dest, query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}
func (r *TimeScaleBaseRepo) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
func (r *TimeScaleBaseRepo) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
