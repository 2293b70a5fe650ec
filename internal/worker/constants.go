package worker

import "time"

// ============================================================================
// Scheduling
// ============================================================================

const (
	// standbyThreshold is the distance to the next run above which the task
	// parks in a long standby timer instead of the final approach.
	standbyThreshold = 1 * time.Hour

	// standbyWakeLead is how long before the run the standby timer wakes up.
	standbyWakeLead = 45 * time.Minute

	// earlyFireTolerance is how early a final-approach timer may fire before it
	// is treated as jitter and rescheduled.
	earlyFireTolerance = 10 * time.Second

	// lateFireWindow bounds the remaining time after a run; anything longer than
	// this means the timer fired on time or slightly late.
	lateFireWindow = 23 * time.Hour
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerQueueFull  = "Worker queue full, job dropped"
	LogMsgWorkerPoolClosed = "Worker pool closed, job dropped"
)

// ============================================================================
// Log Messages - Daily Task
// ============================================================================

// Log messages for daily task scheduling
const (
	LogMsgDailyTaskStandby  = "Daily task on standby"
	LogMsgDailyTaskApproach = "Daily task scheduled"
	LogMsgDailyTaskStarting = "Daily task starting"
	LogMsgDailyTaskFailed   = "Daily task failed"
	LogMsgDailyTaskDone     = "Daily task completed"
)

// ============================================================================
// Log Messages - Daily Close Worker
// ============================================================================

// Log messages for daily close worker operations
const (
	LogMsgDailyCloseCompleted     = "Daily close completed"
	LogMsgDailyCloseManualTrigger = "Daily close manually triggered"
)

// ============================================================================
// Log Messages - Rotation Job
// ============================================================================

// Log messages for the periodic rotation pass
const (
	LogMsgRotationPass  = "Periodic rotation pass"
	LogMsgRotationIdle  = "Periodic rotation found nothing to remove"
	LogMsgRotationError = "Periodic rotation failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
