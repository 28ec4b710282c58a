// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/migrations"
)

// DB wraps the shared *sql.DB pool together with the driver-specific pieces
// the repositories need: a squirrel statement builder with the right
// placeholder format and an error classifier for driver errors.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a connection pool for the driver named in cfg.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	}

	log.Error().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unsupported database driver")
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
}

// Migrate applies the embedded schema migrations for the connection's driver.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver, db.logger)
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.driver
}

func newStatementBuilder(driver string) sq.StatementBuilderType {
	if driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}

	return db.errorClassificator.Classify(err)
}

// wrapError wraps a driver error with the failed operation and, for
// transient failures, with ErrTransientFailure.
func (db *DB) wrapError(op error, err error) error {
	if db.classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrTransientFailure, op, err)
	}

	return fmt.Errorf("%w: %w", op, err)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
