package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/worker"
)

// Daily report times, local wall clock
const (
	RouteReportHour  = 14
	BattleReportHour = 23

	// queueSize bounds pending reports; a full queue drops the report.
	queueSize = 4
)

// ReportHandler is called when a scheduled report is due
type ReportHandler func(ctx context.Context, kind domain.ReportKind) error

// Scheduler fires the daily route and battle reports.
// Reports run on a single background worker so they never overlap, and a
// slow handler never delays the timers.
type Scheduler struct {
	handler  ReportHandler
	location *time.Location
	taskOpts []worker.DailyTaskOption

	mu    sync.Mutex
	tasks map[domain.ReportKind]*worker.DailyTask
	pool  *worker.Pool
}

// NewScheduler creates a scheduler. A nil location means time.Local.
func NewScheduler(handler ReportHandler, loc *time.Location, opts ...worker.DailyTaskOption) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		handler:  handler,
		location: loc,
		taskOpts: opts,
	}
}

// ScheduleDailyReports arms the 14:00 route report and the 23:00 battle report.
// Calling it again while scheduled is a no-op.
func (s *Scheduler) ScheduleDailyReports() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tasks != nil {
		return
	}

	s.pool = worker.NewPool(1, queueSize)
	s.pool.Start()

	s.tasks = map[domain.ReportKind]*worker.DailyTask{
		domain.ReportRoute:  s.newTask(domain.ReportRoute, RouteReportHour),
		domain.ReportBattle: s.newTask(domain.ReportBattle, BattleReportHour),
	}
	for _, task := range s.tasks {
		task.Start()
	}
}

func (s *Scheduler) newTask(kind domain.ReportKind, hour int) *worker.DailyTask {
	pool := s.pool
	return worker.NewDailyTask("report_"+string(kind), hour, 0, s.location, func(ctx context.Context) error {
		ok := pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
			return s.handler(ctx, kind)
		}))
		if !ok {
			logger.FromContext(ctx).Warn("Report dropped", "kind", kind)
		}
		return nil
	}, s.taskOpts...)
}

// NextReports returns when each report fires next. Empty until scheduled.
func (s *Scheduler) NextReports() map[domain.ReportKind]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[domain.ReportKind]time.Time, len(s.tasks))
	for kind, task := range s.tasks {
		next[kind] = task.NextRun()
	}
	return next
}

// Shutdown cancels both timers and waits for queued reports to finish.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	tasks := s.tasks
	pool := s.pool
	s.tasks = nil
	s.pool = nil
	s.mu.Unlock()

	var errs []error
	for _, task := range tasks {
		if err := task.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if pool != nil {
		done := make(chan struct{})
		go func() {
			pool.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
		}
	}

	logger.FromContext(ctx).Info("Report scheduler stopped")
	return errors.Join(errs...)
}
