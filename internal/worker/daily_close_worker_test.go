package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/game"
)

// MockDayCloser mocks the day-closing side of game.Service
type MockDayCloser struct {
	mock.Mock
}

func (m *MockDayCloser) CloseDay(ctx context.Context) (game.DayCloseResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(game.DayCloseResult), args.Error(1)
}

func TestDailyCloseWorker_Trigger(t *testing.T) {
	closer := new(MockDayCloser)
	result := game.DayCloseResult{
		Log:     domain.DailyLog{Date: "2024-03-10", BadgeDaily: domain.BadgeEquilibrist, TotalKcal: 1700},
		LevelUp: true,
	}
	closer.On("CloseDay", mock.Anything).Return(result, nil).Once()

	w := NewDailyCloseWorker(closer, 0, time.UTC)
	require.NoError(t, w.Trigger(context.Background()))

	closer.AssertExpectations(t)
}

func TestDailyCloseWorker_TriggerPropagatesError(t *testing.T) {
	closer := new(MockDayCloser)
	wantErr := errors.New("disk full")
	closer.On("CloseDay", mock.Anything).Return(game.DayCloseResult{}, wantErr).Once()

	w := NewDailyCloseWorker(closer, 0, time.UTC)
	assert.ErrorIs(t, w.Trigger(context.Background()), wantErr)

	closer.AssertExpectations(t)
}

func TestDailyCloseWorker_NextClose(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	now := time.Date(2024, 3, 10, 22, 0, 0, 0, loc)

	w := NewDailyCloseWorker(new(MockDayCloser), 0, loc, WithTaskClock(fixedClock(now)))

	assert.True(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc).Equal(w.NextClose()))
}

func TestDailyCloseWorker_ClosesOnSchedule(t *testing.T) {
	closer := new(MockDayCloser)
	called := make(chan struct{})
	closer.On("CloseDay", mock.Anything).
		Return(game.DayCloseResult{Log: domain.DailyLog{Date: "2024-03-10"}}, nil).
		Run(func(args mock.Arguments) { close(called) }).
		Once()

	start := time.Date(2024, 3, 10, 23, 59, 59, 900_000_000, time.UTC)
	w := NewDailyCloseWorker(closer, 0, time.UTC, WithTaskClock(runningClock(start)))
	w.Start()

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("day was not closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))
	closer.AssertExpectations(t)
}
