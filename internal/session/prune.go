package session

import (
	"context"
	"log/slog"
	"time"

	"trainease/internal/worker"
)

// PruneTask removes expired sessions and logs how many went.
func PruneTask(p Pruner, logger *slog.Logger) worker.Task {
	return func(ctx context.Context) {
		n, err := p.Prune(ctx)
		if err != nil {
			logger.Error("prune sessions", "error", err)
			return
		}
		if n > 0 {
			logger.Info("pruned expired sessions", "count", n)
		}
	}
}

// StartPruning schedules PruneTask on pool every interval until ctx is done.
func StartPruning(ctx context.Context, pool worker.Pool, p Pruner, interval time.Duration, logger *slog.Logger) {
	go worker.Every(ctx, pool, interval, PruneTask(p, logger))
}
