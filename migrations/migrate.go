// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the service and applies it with
// goose. Each supported database driver has its own migration directory.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Logger is the logging contract goose expects. *logger.Logger satisfies it.
type Logger interface {
	Fatalf(format string, v ...any)
	Printf(format string, v ...any)
}

var (
	ErrNilDB           = errors.New("db is nil")
	ErrUnsupportedType = errors.New("unsupported database driver")
)

// goose keeps its dialect, filesystem and logger in package-level state.
var gooseMu sync.Mutex

var dialects = map[string]struct {
	gooseDialect string
	dir          string
}{
	"postgres": {gooseDialect: "pgx", dir: "postgres"},
	"sqlite":   {gooseDialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration for driver ("postgres" or "sqlite")
// to db. A nil log keeps goose's default standard-library logger.
func Migrate(ctx context.Context, db *sql.DB, driver string, log Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedType, driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	if log != nil {
		goose.SetLogger(log)
	}

	if err := goose.SetDialect(dialect.gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dialect.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
