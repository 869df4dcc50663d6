// Package scheduler drives periodic analysis runs.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/diamond-picks/internal/engine"
	applogger "github.com/yourusername/diamond-picks/internal/logger"
)

// Scheduler manages recurring analysis runs on a cron expression.
type Scheduler struct {
	cron            *cron.Cron
	engine          *engine.Engine
	logger          *logrus.Entry
	mu              sync.RWMutex
	isRunning       bool
	jobIDs          []cron.EntryID
	gracefulTimeout time.Duration
	runTimeout      time.Duration

	resultMu   sync.RWMutex
	lastResult *engine.AnalysisResult
}

// NewScheduler creates a scheduler over the analysis engine. The cron
// parser accepts six-field expressions with seconds.
func NewScheduler(eng *engine.Engine, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
		),
		engine:          eng,
		logger:          applogger.ForComponent(log, "scheduler"),
		jobIDs:          make([]cron.EntryID, 0),
		gracefulTimeout: 30 * time.Second,
		runTimeout:      2 * time.Minute,
	}
}

// ScheduleAnalysis registers the recurring analysis job.
func (s *Scheduler) ScheduleAnalysis(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	entryID, err := s.cron.AddFunc(cronExpression, s.runOnce)
	if err != nil {
		return fmt.Errorf("failed to add analysis job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", cronExpression).Info("Scheduled analysis job")
	return nil
}

// RunNow triggers one analysis run immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()

	result, err := s.engine.Run(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Scheduled analysis run failed")
		return
	}

	s.resultMu.Lock()
	s.lastResult = result
	s.resultMu.Unlock()
}

// LastResult returns the most recent completed run, if any.
func (s *Scheduler) LastResult() (*engine.AnalysisResult, bool) {
	s.resultMu.RLock()
	defer s.resultMu.RUnlock()
	return s.lastResult, s.lastResult != nil
}

// Start starts the scheduler.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}
	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.gracefulTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out waiting for running job")
	}

	s.isRunning = false
	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns the time of the next scheduled run.
func (s *Scheduler) NextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	next := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() && (next.IsZero() || entry.Next.Before(next)) {
			next = entry.Next
		}
	}
	return next
}
