package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper deactivates ads whose spend already reached their budget.
type Sweeper interface {
	SweepExhausted(ctx context.Context) (int64, error)
}

// ExhaustionSweep runs the sweeper on a cron schedule.
type ExhaustionSweep struct {
	sweeper  Sweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewExhaustionSweep creates the job. An empty schedule disables it.
func NewExhaustionSweep(sweeper Sweeper, schedule string, logger *slog.Logger) *ExhaustionSweep {
	return &ExhaustionSweep{
		sweeper:  sweeper,
		schedule: schedule,
		// overlapping sweeps would only race on the same rows
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With(slog.String("component", "exhaustion_sweep")),
	}
}

// Start schedules the sweep and stops it again when ctx is cancelled.
func (s *ExhaustionSweep) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("sweep schedule not configured, skipping")
		return nil
	}
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.schedule, err)
	}
	if _, err := s.cron.AddFunc(s.schedule, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	s.cron.Start()
	s.running = true
	s.logger.Info("exhaustion sweep started", slog.String("schedule", s.schedule))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// RunOnce performs a single sweep and logs the outcome.
func (s *ExhaustionSweep) RunOnce(ctx context.Context) {
	n, err := s.sweeper.SweepExhausted(ctx)
	if err != nil {
		s.logger.Error("exhaustion sweep failed", slog.Any("error", err))
		return
	}
	if n > 0 {
		s.logger.Info("exhausted ads deactivated", slog.Int64("count", n))
		return
	}
	s.logger.Debug("exhaustion sweep found nothing to do")
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *ExhaustionSweep) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("exhaustion sweep stopped")
}

// IsRunning reports whether the schedule is active.
func (s *ExhaustionSweep) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the next scheduled sweep, or nil when not scheduled.
func (s *ExhaustionSweep) NextRun() *time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
