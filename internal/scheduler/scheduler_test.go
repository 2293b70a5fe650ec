package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealthQuest_Go/internal/testing/leaktest"
	"github.com/osse101/HealthQuest_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	require.NoError(t, sched.Schedule("test", 10*time.Millisecond, job))

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, job.RunCount.Load(), int32(2))
}

func TestScheduler_InvalidInterval(t *testing.T) {
	sched := New(worker.NewPool(1, 1))
	defer sched.Stop()

	assert.ErrorIs(t, sched.Schedule("zero", 0, &MockJob{}), ErrInvalidInterval)
	assert.ErrorIs(t, sched.Schedule("negative", -time.Second, &MockJob{}), ErrInvalidInterval)
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		sched := New(worker.NewPool(1, 1))
		require.NoError(t, sched.Schedule("test", time.Hour, &MockJob{}))

		sched.Stop()
		sched.Stop()

		assert.ErrorIs(t, sched.Schedule("late", time.Hour, &MockJob{}), ErrStopped)
	})
}

func TestScheduler_SkipsTickWhenQueueFull(t *testing.T) {
	// Pool never started: the single queue slot fills on the first tick and
	// later ticks must not block the scheduler goroutine
	pool := worker.NewPool(1, 1)
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 10)}
	require.NoError(t, sched.Schedule("test", 5*time.Millisecond, job))

	time.Sleep(50 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		sched.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked behind a full queue")
	}
	assert.Equal(t, int32(0), job.RunCount.Load())
}
