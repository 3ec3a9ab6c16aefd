// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-auth-guard/internal/config"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/migrations"
)

// Driver names registered with database/sql. They double as goose dialects.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB is a *sql.DB bound to the driver it was opened with. The driver decides
// the placeholder format of generated queries and how constraint errors are
// recognized.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens the user store selected by cfg.DSN:
//   - "postgres://..." or "postgresql://..." opens PostgreSQL via pgx;
//   - an empty DSN opens a private in-memory SQLite database;
//   - anything else is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case strings.Contains(cfg.DSN, "://"):
		log.Error().Str("func", "NewConnect").Msg("unsupported database DSN scheme")
		return nil, ErrUnsupportedDSN
	default:
		return NewConnectSQLite(ctx, cfg.DSN, log)
	}
}

// NewDB wraps an already opened connection. driver must be [DriverPostgres]
// or [DriverSQLite].
func NewDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	return &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// builder returns a squirrel statement builder with the placeholder format of
// the driver: $1, $2 ... for PostgreSQL and ? for SQLite.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// isUniqueViolation reports whether err is a unique constraint failure of
// either backend.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
