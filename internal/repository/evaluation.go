// Package repository provides persistence implementations for the
// evaluation log using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/atinyakov/passmeter/internal/models"
	"github.com/atinyakov/passmeter/internal/strength"
	"github.com/lib/pq"
)

// PostgresEvaluationRepository stores evaluation records in PostgreSQL.
type PostgresEvaluationRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresEvaluationRepository creates a new PostgresEvaluationRepository
// with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresEvaluationRepository(db *sql.DB) *PostgresEvaluationRepository {
	return &PostgresEvaluationRepository{DB: db}
}

// Record inserts a single evaluation record.
// The names of the met requirements are stored as a TEXT[] column.
func (r *PostgresEvaluationRepository) Record(ctx context.Context, rec models.EvaluationRecord) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO evaluations (id, strength, satisfied, met, created_at) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.Strength.String(), rec.Satisfied, pq.Array(rec.Met), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record evaluation: %w", err)
	}
	return nil
}

// CountByStrength returns the number of logged evaluations per strength.
// Levels with no records are absent from the map.
//
//	ctx: context for cancellation and deadlines
func (r *PostgresEvaluationRepository) CountByStrength(ctx context.Context) (map[strength.Strength]int64, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT strength, COUNT(*) FROM evaluations GROUP BY strength`)
	if err != nil {
		return nil, fmt.Errorf("CountByStrength: %w", err)
	}
	defer rows.Close()

	counts := make(map[strength.Strength]int64)
	for rows.Next() {
		var (
			name  string
			count int64
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		level, err := strength.ParseStrength(name)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		counts[level] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CountByStrength: %w", err)
	}
	return counts, nil
}

// DeleteOlderThan removes records created before cutoff and returns how many were removed.
func (r *PostgresEvaluationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM evaluations WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete evaluations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
