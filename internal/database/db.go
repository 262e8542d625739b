// Package database stores the history of finished countdowns in SQLite.
// Only completed runs are written; a live countdown is never saved.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	DB *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	d := &Database{DB: db}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			duration_seconds INTEGER NOT NULL,
			started_at DATETIME NOT NULL,
			finished_at DATETIME NOT NULL,
			day TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_day ON runs(day);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
