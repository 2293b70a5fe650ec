package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/game"
	"github.com/osse101/HealthQuest_Go/internal/storage"
)

// MockGameService is a testify mock for game.Service
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Load(ctx context.Context) (domain.AppState, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AppState), args.Error(1)
}

func (m *MockGameService) State(ctx context.Context) (domain.AppState, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AppState), args.Error(1)
}

func (m *MockGameService) RecordMeal(ctx context.Context, input domain.MealInput) (domain.Meal, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Meal), args.Error(1)
}

func (m *MockGameService) SyncHealth(ctx context.Context) (game.SyncResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(game.SyncResult), args.Error(1)
}

func (m *MockGameService) Explore(ctx context.Context, choiceHealthy bool) (game.ExploreResult, error) {
	args := m.Called(ctx, choiceHealthy)
	return args.Get(0).(game.ExploreResult), args.Error(1)
}

func (m *MockGameService) CloseDay(ctx context.Context) (game.DayCloseResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(game.DayCloseResult), args.Error(1)
}

func (m *MockGameService) UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	args := m.Called(ctx, settings)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockGameService) Usage(ctx context.Context) (domain.StorageUsage, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StorageUsage), args.Error(1)
}

func (m *MockGameService) Rotate(ctx context.Context) (domain.RotationResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RotationResult), args.Error(1)
}

func (m *MockGameService) ExportJSON(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockGameService) ExportYAML(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGameService) ExportToFolder(ctx context.Context, format storage.ExportFormat) (string, error) {
	args := m.Called(ctx, format)
	return args.String(0), args.Error(1)
}

func (m *MockGameService) Import(ctx context.Context, data []byte) (domain.AppState, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.AppState), args.Error(1)
}

func (m *MockGameService) DailyLog(ctx context.Context, date string) (domain.DailyLog, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.DailyLog), args.Error(1)
}

func (m *MockGameService) ListDailyLogs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGameService) HandleReport(ctx context.Context, kind domain.ReportKind) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}
