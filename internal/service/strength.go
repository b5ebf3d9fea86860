// Package service provides password evaluation business logic,
// delegating the evaluation log to an EvaluationRepository.
package service

import (
	"context"
	"time"

	"github.com/atinyakov/passmeter/internal/models"
	"github.com/atinyakov/passmeter/internal/strength"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EvaluationRepository defines the persistence operations
// required by the strength service.
type EvaluationRepository interface {
	// Record appends one evaluation to the log.
	Record(ctx context.Context, rec models.EvaluationRecord) error
	// CountByStrength returns the number of logged evaluations per strength.
	CountByStrength(ctx context.Context) (map[strength.Strength]int64, error)
}

// StrengthService evaluates passwords and keeps an anonymous log of outcomes.
type StrengthService struct {
	// repo stores evaluation records.
	repo EvaluationRepository
	// log receives storage failures and per-evaluation debug lines.
	log *zap.Logger
	// now is replaced in tests.
	now func() time.Time
}

// NewStrengthService constructs a StrengthService.
// A nil logger is replaced with a no-op logger.
func NewStrengthService(repo EvaluationRepository, log *zap.Logger) *StrengthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &StrengthService{repo: repo, log: log, now: time.Now}
}

// Evaluate classifies password and records the outcome.
// The password itself is neither stored nor logged. A failure to record
// is logged and does not affect the returned result.
func (s *StrengthService) Evaluate(ctx context.Context, password string) strength.Result {
	res := strength.Evaluate(password)

	rec := models.EvaluationRecord{
		ID:        uuid.NewString(),
		Strength:  res.Strength,
		Satisfied: res.Count(),
		Met:       metNames(res),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Record(ctx, rec); err != nil {
		s.log.Error("failed to record evaluation", zap.String("id", rec.ID), zap.Error(err))
	}

	s.log.Debug("password evaluated",
		zap.String("id", rec.ID),
		zap.Stringer("strength", res.Strength),
		zap.Int("satisfied", rec.Satisfied),
	)
	return res
}

// Stats returns the number of logged evaluations per strength.
func (s *StrengthService) Stats(ctx context.Context) (models.Stats, error) {
	counts, err := s.repo.CountByStrength(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	return models.NewStats(counts), nil
}

func metNames(res strength.Result) []string {
	names := make([]string, 0, strength.RequirementCount)
	for _, r := range strength.Requirements() {
		if res.Met(r) {
			names = append(names, r.Name())
		}
	}
	return names
}
