package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

// Runner is one full pipeline pass.
type Runner interface {
	Run(ctx context.Context) (*domain.RunStats, error)
}

// runTimeout bounds a single pass; oracle calls dominate the runtime.
const runTimeout = 30 * time.Minute

type Scheduler struct {
	runner   Runner
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(runner Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger,
	}
}

// Start runs one pass immediately, then one per interval until the
// context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	if _, err := s.runner.Run(runCtx); err != nil {
		s.logger.Error("pipeline run failed", "error", err)
	}
}
