// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avelram/go-reminders/internal/config"
	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/migrations"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB wraps the sql connection pool together with the dialect it speaks,
// so that migrations and error mapping stay backend-aware.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all pending embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// NewConnectPostgres opens and pings a PostgreSQL connection via the pgx
// stdlib driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		dialect: migrations.DialectPostgres,
		logger:  log,
	}, nil
}

// postgresError extracts the PostgreSQL error code from err, or returns an
// empty string when err did not originate from the pgx driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
