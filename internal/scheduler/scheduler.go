// Package scheduler runs recurring jobs at a fixed interval on a worker pool
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Recurring job scheduled"
	LogMsgTickSkipped  = "Recurring job skipped, worker queue full"
)

var (
	// ErrStopped is returned when scheduling on a stopped scheduler
	ErrStopped = errors.New("scheduler stopped")
	// ErrInvalidInterval is returned for a zero or negative interval
	ErrInvalidInterval = errors.New("interval must be positive")
)

// Scheduler manages interval jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick that finds the pool
// queue full is skipped, so a slow job never stacks up behind itself.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}

	log := logger.FromContext(context.Background())
	log.Info(LogMsgJobScheduled, "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.Enqueue(job) {
					log.Warn(LogMsgTickSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
	return nil
}

// Stop stops all scheduled jobs. It does not stop the pool.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.quit)
	s.mu.Unlock()

	s.wg.Wait()
}
