package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// ContentExpirer flips lapsed items out of the feed.
type ContentExpirer interface {
	ExpireLapsed(ctx context.Context, now time.Time) (int64, error)
}

// WindowPruner drops rate-limit windows too old to affect any quota.
type WindowPruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Scheduler runs the periodic maintenance pass: expiring campus updates
// and pruning stale rate-limit windows.
type Scheduler struct {
	expirer   ContentExpirer
	pruner    WindowPruner
	interval  time.Duration
	retention time.Duration
	logger    *slog.Logger
}

func NewScheduler(expirer ContentExpirer, pruner WindowPruner, interval, retention time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		expirer:   expirer,
		pruner:    pruner,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("maintenance started", "interval", s.interval)

	s.runMaintenance(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("maintenance stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runMaintenance(ctx)
		}
	}
}

func (s *Scheduler) runMaintenance(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	now := time.Now()

	expired, err := s.expirer.ExpireLapsed(runCtx, now)
	if err != nil {
		s.logger.Error("expire pass failed", "error", err)
	} else if expired > 0 {
		s.logger.Info("expired lapsed content", "count", expired)
	}

	pruned, err := s.pruner.PruneBefore(runCtx, now.Add(-s.retention))
	if err != nil {
		s.logger.Error("window prune failed", "error", err)
	} else if pruned > 0 {
		s.logger.Debug("pruned rate-limit windows", "count", pruned)
	}
}
