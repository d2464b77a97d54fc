// FilePath: server/telemetry/internal/database/database.go
package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	nuts "github.com/vaudience/go-nuts"
)

// DB is the connection handle shared by the storage layer
type DB interface {
	Close() error
	Ping(ctx context.Context) error
	GetDB() *sqlx.DB
}

// TimescaleDB represents a TimescaleDB database connection
type TimescaleDB struct {
	db *sqlx.DB
}

// DSN builds the lib/pq keyword/value connection string
func DSN(cfg config.PostgresConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
}

// URL builds the postgres:// form expected by golang-migrate
func URL(cfg config.PostgresConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Path:   "/" + cfg.DBName,
	}
	q := u.Query()
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// NewTimescaleDB opens the pool and verifies the server is reachable
func NewTimescaleDB(cfg config.PostgresConfig) (*TimescaleDB, error) {
	db, err := sqlx.Connect("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("error connecting to TimescaleDB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	nuts.L.Infof("[TimescaleDB] Connected to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
	return &TimescaleDB{db: db}, nil
}

// Wrap adopts an existing handle, e.g. one backed by sqlmock
func Wrap(db *sqlx.DB) *TimescaleDB {
	return &TimescaleDB{db: db}
}

// VerifyExtension fails unless the timescaledb extension is installed
func (t *TimescaleDB) VerifyExtension(ctx context.Context) error {
	var hasTimescaleDB bool
	err := t.db.GetContext(ctx, &hasTimescaleDB, "SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'timescaledb')")
	if err != nil {
		return fmt.Errorf("error checking TimescaleDB extension: %w", err)
	}
	if !hasTimescaleDB {
		return fmt.Errorf("TimescaleDB extension not available")
	}
	return nil
}

func (t *TimescaleDB) Close() error {
	return t.db.Close()
}

func (t *TimescaleDB) Ping(ctx context.Context) error {
	return t.db.PingContext(ctx)
}

func (t *TimescaleDB) GetDB() *sqlx.DB {
	return t.db
}
