package db

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Purger removes evaluation records created before a cutoff.
type Purger interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// StartRetentionCleaner purges evaluation records older than retention every interval
// until ctx is cancelled.
func StartRetentionCleaner(
	ctx context.Context,
	purger Purger,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := purger.DeleteOlderThan(ctx, time.Now().Add(-retention))
				if err != nil {
					log.Error("failed to clean old evaluations", zap.Error(err))
					continue
				}
				if removed > 0 {
					log.Info("cleaned old evaluations", zap.Int64("removed", removed))
				}
			}
		}
	}()
}
