// Package db opens the evaluation log database and runs its maintenance jobs.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
    id UUID PRIMARY KEY,
    strength TEXT NOT NULL,
    satisfied SMALLINT NOT NULL,
    met TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS evaluations_created_at_idx ON evaluations (created_at);
`

// InitPostgres connects to dsn, verifies the connection and creates the schema.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := prepare(db); err != nil {
		return nil, err
	}
	return db, nil
}

// prepare pings db and creates the schema. db is closed when either step fails.
func prepare(db *sql.DB) error {
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
