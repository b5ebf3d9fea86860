package repository

import (
	"context"
	"sync"
	"time"

	"github.com/atinyakov/passmeter/internal/models"
	"github.com/atinyakov/passmeter/internal/strength"
)

// MemoryEvaluationRepository keeps evaluation records in process memory.
// It is used when no database DSN is configured.
type MemoryEvaluationRepository struct {
	mu      sync.Mutex
	records []models.EvaluationRecord
}

// NewMemoryEvaluationRepository returns an empty in-memory repository.
func NewMemoryEvaluationRepository() *MemoryEvaluationRepository {
	return &MemoryEvaluationRepository{}
}

// Record appends rec to the log.
func (r *MemoryEvaluationRepository) Record(_ context.Context, rec models.EvaluationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.Met = append([]string(nil), rec.Met...)
	r.records = append(r.records, rec)
	return nil
}

// CountByStrength returns the number of records per strength.
func (r *MemoryEvaluationRepository) CountByStrength(_ context.Context) (map[strength.Strength]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[strength.Strength]int64)
	for _, rec := range r.records {
		counts[rec.Strength]++
	}
	return counts, nil
}

// DeleteOlderThan drops records created before cutoff.
func (r *MemoryEvaluationRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.records[:0]
	for _, rec := range r.records {
		if !rec.CreatedAt.Before(cutoff) {
			kept = append(kept, rec)
		}
	}
	removed := int64(len(r.records) - len(kept))
	clear(r.records[len(kept):])
	r.records = kept
	return removed, nil
}
