// Package scheduler owns the engine's three periodic tasks: the weather
// sweep, the daily advisory pass and the daily cleanup. Each task is
// single-flight: a trigger that fires while the previous run is still
// executing is skipped, never queued.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"
)

// Task is one schedulable unit of work. Tasks receive the scheduler's base
// context and are expected to catch their own errors.
type Task func(ctx context.Context)

// Config carries the three cron expressions (standard five-field specs).
type Config struct {
	SweepSpec    string
	AdvisorySpec string
	CleanupSpec  string
}

// Scheduler runs the periodic tasks against wall-clock time.
type Scheduler struct {
	cfg      Config
	sweep    Task
	advisory Task
	cleanup  Task

	mu      sync.Mutex
	cron    *cron.Cron
	started bool
}

func New(cfg Config, sweep, advisory, cleanup Task) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		sweep:    sweep,
		advisory: advisory,
		cleanup:  cleanup,
	}
}

// Start registers and starts the three cron entries. Starting an already
// started scheduler is a no-op with a warning. The given context is handed
// to every task run; canceling it asks in-flight tasks to wind down, but
// Stop is what waits for them.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		zlog.Logger.Warn().Msg("scheduler already started, ignoring")
		return nil
	}

	logger := cron.PrintfLogger(&zlog.Logger)
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(logger),
		cron.Recover(logger),
	))

	entries := []struct {
		name string
		spec string
		task Task
	}{
		{"sweep", s.cfg.SweepSpec, s.sweep},
		{"advisory", s.cfg.AdvisorySpec, s.advisory},
		{"cleanup", s.cfg.CleanupSpec, s.cleanup},
	}

	for _, e := range entries {
		e := e
		if _, err := c.AddFunc(e.spec, func() {
			if ctx.Err() != nil {
				return
			}

			zlog.Logger.Debug().Str("task", e.name).Msg("scheduled task triggered")
			e.task(ctx)
		}); err != nil {
			return fmt.Errorf("schedule %s task: %w", e.name, err)
		}

		zlog.Logger.Info().Str("task", e.name).Str("spec", e.spec).Msg("task scheduled")
	}

	c.Start()
	s.cron = c
	s.started = true

	zlog.Logger.Info().Msg("scheduler started")
	return nil
}

// Stop cancels future triggers and blocks until in-flight task runs have
// completed, so no partially-written state survives a shutdown request.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()

	s.cron = nil
	s.started = false

	zlog.Logger.Info().Msg("scheduler stopped")
}
