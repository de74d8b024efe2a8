// Package sqlite provides SQLite-based storage for scraped studio records.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write performance.
	// Not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
// Sequence fields are stored as JSON arrays; the address and rating columns
// are NULL when the field was absent from the page.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS studios (
			id TEXT PRIMARY KEY,
			source_url TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			name TEXT NOT NULL DEFAULT '',
			overview_labels TEXT NOT NULL DEFAULT '[]',
			email TEXT NOT NULL DEFAULT '',
			homepage TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			address_segments TEXT,
			street TEXT NOT NULL DEFAULT '',
			postal_code TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			rating_score TEXT,
			rating_count TEXT,
			rating_factors TEXT NOT NULL DEFAULT '[]',
			activities TEXT NOT NULL DEFAULT '[]',
			sale_text TEXT NOT NULL DEFAULT '',
			image_urls TEXT NOT NULL DEFAULT '[]',
			content_hash TEXT NOT NULL DEFAULT '',
			scraped_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_studios_source_url ON studios(source_url);
		CREATE INDEX IF NOT EXISTS idx_studios_scraped_at ON studios(scraped_at);
	`

	_, err := db.db.Exec(schema)
	return err
}
