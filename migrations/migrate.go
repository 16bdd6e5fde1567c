// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

// Package migrations embeds the SQL schema migrations and applies them with
// goose. Each supported backend has its own migration directory because the
// schemas differ in identifier and timestamp types.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported migration dialects, matching the embedded directory names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	gooseDialect := "pgx"
	if dialect == DialectSQLite {
		gooseDialect = "sqlite3"
	}

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
