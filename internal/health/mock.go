package health

import (
	"context"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

// MockProvider returns canned statistics. Used in development and tests.
type MockProvider struct {
	Stats domain.HealthStats
}

// NewMockProvider returns a provider with a typical moderate day
func NewMockProvider() *MockProvider {
	heartRate := 70.0
	return &MockProvider{Stats: domain.HealthStats{
		Steps:           5000,
		Floors:          5,
		ActiveKcal:      350,
		ExerciseMinutes: 30,
		SleepHours:      7.5,
		HydrationLiters: 1.2,
		HeartRateAvg:    &heartRate,
	}}
}

func (m *MockProvider) RequestAuthorization(_ context.Context) error {
	return nil
}

func (m *MockProvider) ReadTodayStats(_ context.Context) (domain.HealthStats, error) {
	return m.Stats.Clone(), nil
}
