package game

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/storage"
)

// MockHealthProvider is a testify mock for health.Provider
type MockHealthProvider struct {
	mock.Mock
}

func (m *MockHealthProvider) RequestAuthorization(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHealthProvider) ReadTodayStats(ctx context.Context) (domain.HealthStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.HealthStats), args.Error(1)
}

// MockRenderer is a testify mock for report.Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) SaveReportSnapshot(ctx context.Context, r domain.Report, date time.Time) (string, error) {
	args := m.Called(ctx, r, date)
	return args.String(0), args.Error(1)
}

// failingSaveRepo is a real store whose canonical saves fail
type failingSaveRepo struct {
	*storage.Store
	err error
}

func (r *failingSaveRepo) SaveState(ctx context.Context, state domain.AppState) error {
	return r.err
}
