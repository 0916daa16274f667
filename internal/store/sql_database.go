package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/migrations"

	// database drivers registered for database/sql
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB wraps the shared *sql.DB handle together with the driver-specific
// error classifier, so repository code can map driver errors to sentinel
// errors without knowing which backend is configured.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	driver             string
	logger             *logger.Logger
}

// NewConnect opens a connection to the configured database backend,
// verifies it with a ping, and returns the wrapped handle.
//
// The backend is selected by cfg.Driver: PostgreSQL via the pgx stdlib
// driver or SQLite via mattn/go-sqlite3 (single-node deployments).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var classifier ErrorClassificator
	switch cfg.Driver {
	case DriverPostgres:
		classifier = NewPostgresErrorClassifier()
	case DriverSQLite:
		classifier = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		errorClassificator: classifier,
		driver:             cfg.Driver,
		logger:             log,
	}, nil
}

// Migrate applies all pending schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
