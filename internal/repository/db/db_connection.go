// Package db opens the SQLite file behind the monitor's state, audit log and
// operator accounts.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const (
	driverName  = "sqlite"
	openTimeout = 5 * time.Second
)

// pragmas run on the single pooled connection before the schema is applied.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// schema is applied in one transaction; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS server_state (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		host       TEXT NOT NULL,
		power      TEXT NOT NULL,
		uid        TEXT NOT NULL,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		last_error TEXT,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS audit_events (
		id          TEXT PRIMARY KEY,
		occurred_at TIMESTAMP NOT NULL,
		type        TEXT NOT NULL,
		message     TEXT NOT NULL,
		meta        TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_events_occurred_at ON audit_events (occurred_at, type)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	)`,
}

// InitDB opens or creates the database at path and makes sure the tables
// exist. ":memory:" gives a throwaway database.
func InitDB(path string) (*sql.DB, error) {
	conn, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// One connection: SQLite serialises writers anyway, and ":memory:" is
	// per-connection.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	if err := prepare(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("prepare sqlite %q: %w", path, err)
	}
	return conn, nil
}

func prepare(ctx context.Context, conn *sql.DB) error {
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	for _, p := range pragmas {
		if _, err := conn.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
