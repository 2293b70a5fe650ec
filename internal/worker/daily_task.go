package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/HealthQuest_Go/internal/logger"
)

// DailyTask runs a function once a day at a fixed local wall-clock time.
//
// Scheduling is two-stage: while the next run is more than an hour away the
// task sleeps on a standby timer that wakes 45 minutes early, then arms a
// final-approach timer for the exact instant. This keeps long timers from
// drifting into a tight rescheduling loop.
type DailyTask struct {
	name     string
	hour     int
	minute   int
	location *time.Location
	run      func(ctx context.Context) error
	now      func() time.Time

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// DailyTaskOption configures a DailyTask
type DailyTaskOption func(*DailyTask)

// WithTaskClock overrides the wall clock used to compute the next run.
func WithTaskClock(now func() time.Time) DailyTaskOption {
	return func(t *DailyTask) {
		t.now = now
	}
}

// NewDailyTask creates a task that calls run every day at hour:minute in loc.
// A nil location means time.Local.
func NewDailyTask(name string, hour, minute int, loc *time.Location, run func(ctx context.Context) error, opts ...DailyTaskOption) *DailyTask {
	if loc == nil {
		loc = time.Local
	}
	t := &DailyTask{
		name:     name,
		hour:     hour,
		minute:   minute,
		location: loc,
		run:      run,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the task name used in logs.
func (t *DailyTask) Name() string {
	return t.name
}

// Start schedules the first run.
func (t *DailyTask) Start() {
	t.scheduleNext()
}

// NextRun returns the next instant the task is due, strictly after now.
func (t *DailyTask) NextRun() time.Time {
	now := t.now().In(t.location)
	next := time.Date(now.Year(), now.Month(), now.Day(), t.hour, t.minute, 0, 0, t.location)
	if !next.After(now) {
		next = time.Date(now.Year(), now.Month(), now.Day()+1, t.hour, t.minute, 0, 0, t.location)
	}
	return next
}

func (t *DailyTask) timeUntilNextRun() time.Duration {
	return t.NextRun().Sub(t.now())
}

func (t *DailyTask) stopped() bool {
	select {
	case <-t.shutdown:
		return true
	default:
		return false
	}
}

func (t *DailyTask) scheduleNext() {
	duration := t.timeUntilNextRun()
	log := logger.FromContext(context.Background())

	t.mu.Lock()
	if t.stopped() {
		t.mu.Unlock()
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}

	if duration > standbyThreshold {
		waitDuration := duration - standbyWakeLead
		t.timer = time.AfterFunc(waitDuration, t.scheduleNext)
		t.mu.Unlock()

		log.Info(LogMsgDailyTaskStandby, "task", t.name, "next_check_at", t.now().Add(waitDuration))
		return
	}

	t.timer = time.AfterFunc(duration, func() {
		if t.stopped() {
			return
		}

		// Fired early: wait out the remainder instead of running twice.
		rem := t.timeUntilNextRun()
		if rem > earlyFireTolerance && rem < lateFireWindow {
			t.scheduleNext()
			return
		}

		t.execute(context.Background())
		t.scheduleNext()
	})
	t.mu.Unlock()

	log.Info(LogMsgDailyTaskApproach, "task", t.name, "next_run_at", t.now().Add(duration))
}

// execute runs the task in a tracked goroutine so Shutdown can wait for it.
func (t *DailyTask) execute(ctx context.Context) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		_ = t.runLogged(ctx)
	}()
}

func (t *DailyTask) runLogged(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDailyTaskStarting, "task", t.name)

	if err := t.run(ctx); err != nil {
		log.Error(LogMsgDailyTaskFailed, "task", t.name, "error", err)
		return err
	}

	log.Info(LogMsgDailyTaskDone, "task", t.name)
	return nil
}

// Trigger runs the task synchronously outside its schedule.
func (t *DailyTask) Trigger(ctx context.Context) error {
	t.wg.Add(1)
	defer t.wg.Done()
	return t.runLogged(ctx)
}

// Shutdown cancels the pending timer and waits for in-flight runs to finish.
func (t *DailyTask) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	t.mu.Lock()
	if !t.stopped() {
		close(t.shutdown)
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.mu.Unlock()

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Daily task shutdown complete", "task", t.name)
		return nil
	case <-ctx.Done():
		log.Warn("Daily task shutdown timeout, a run may still be in progress", "task", t.name)
		return ctx.Err()
	}
}
