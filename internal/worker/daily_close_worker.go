package worker

import (
	"context"
	"time"

	"github.com/osse101/HealthQuest_Go/internal/game"
	"github.com/osse101/HealthQuest_Go/internal/logger"
)

// DayCloser closes the current day. Implemented by game.Service.
type DayCloser interface {
	CloseDay(ctx context.Context) (game.DayCloseResult, error)
}

// DailyCloseWorker closes the day at a configured local hour
type DailyCloseWorker struct {
	closer DayCloser
	task   *DailyTask
}

// NewDailyCloseWorker creates a worker that calls closer.CloseDay every day at
// hour:00 in loc.
func NewDailyCloseWorker(closer DayCloser, hour int, loc *time.Location, opts ...DailyTaskOption) *DailyCloseWorker {
	w := &DailyCloseWorker{closer: closer}
	w.task = NewDailyTask("daily_close", hour, 0, loc, w.closeDay, opts...)
	return w
}

// Start schedules the first close
func (w *DailyCloseWorker) Start() {
	w.task.Start()
}

// NextClose returns when the next scheduled close is due
func (w *DailyCloseWorker) NextClose() time.Time {
	return w.task.NextRun()
}

// Trigger closes the day immediately, outside the schedule
func (w *DailyCloseWorker) Trigger(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgDailyCloseManualTrigger)
	return w.task.Trigger(ctx)
}

func (w *DailyCloseWorker) closeDay(ctx context.Context) error {
	result, err := w.closer.CloseDay(ctx)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgDailyCloseCompleted,
		"date", result.Log.Date,
		"badge", result.Log.BadgeDaily,
		"total_kcal", result.Log.TotalKcal,
		"level_up", result.LevelUp,
		"boss_victory", result.BossVictory)
	return nil
}

// Shutdown cancels the pending close and waits for an in-flight one
func (w *DailyCloseWorker) Shutdown(ctx context.Context) error {
	return w.task.Shutdown(ctx)
}
