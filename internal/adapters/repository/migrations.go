package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type migration struct {
	version  int
	name     string
	postgres string
	sqlite   string
}

var migrations = []migration{
	{
		version: 1,
		name:    "users",
		postgres: `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
		sqlite: `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`,
	},
	{
		version: 2,
		name:    "documents",
		postgres: `
CREATE TABLE IF NOT EXISTS documents (
  path TEXT NOT NULL,
  id TEXT NOT NULL,
  data JSONB NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  PRIMARY KEY (path, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_path_created ON documents (path, created_at);
CREATE INDEX IF NOT EXISTS idx_documents_occurred_at ON documents (path, (data->>'occurred_at') COLLATE "C");`,
		sqlite: `
CREATE TABLE IF NOT EXISTS documents (
  path TEXT NOT NULL,
  id TEXT NOT NULL,
  data TEXT NOT NULL CHECK (json_valid(data)),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (path, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_path_created ON documents (path, created_at);
CREATE INDEX IF NOT EXISTS idx_documents_occurred_at ON documents (path, json_extract(data, '$.occurred_at'));`,
	},
}

// SchemaVersion is the highest migration version shipped with this build.
func SchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// ApplyMigrations brings the schema up to date. It is idempotent.
func ApplyMigrations(ctx context.Context, db *sqlx.DB) error {
	d, err := dialectFor(db.DriverName())
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL
);`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRowContext(ctx, db.Rebind(`SELECT 1 FROM schema_migrations WHERE version = ?`), m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		stmt := m.postgres
		if d == dialectSQLite {
			stmt = m.sqlite
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`), m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return nil
}
