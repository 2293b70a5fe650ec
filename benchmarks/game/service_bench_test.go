package game_bench

import (
	"context"
	"testing"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/engine"
	"github.com/osse101/HealthQuest_Go/internal/game"
	"github.com/osse101/HealthQuest_Go/internal/storage"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubRepository struct{}

func (s *StubRepository) LoadState(ctx context.Context) (domain.AppState, error) {
	return domain.DefaultAppState(), nil
}
func (s *StubRepository) SaveState(ctx context.Context, state domain.AppState) error {
	return nil
}
func (s *StubRepository) ImportState(ctx context.Context, data []byte) error {
	return nil
}
func (s *StubRepository) ExportState(ctx context.Context) ([]byte, error) {
	return nil, nil
}
func (s *StubRepository) ExportStateYAML(ctx context.Context) (string, error) {
	return "", nil
}
func (s *StubRepository) ExportToFolder(ctx context.Context, format storage.ExportFormat) (string, error) {
	return "", nil
}
func (s *StubRepository) CurrentUsage(ctx context.Context) (domain.StorageUsage, error) {
	return domain.StorageUsage{}, nil
}
func (s *StubRepository) RotateStorageIfNeeded(ctx context.Context) (domain.RotationResult, error) {
	return domain.RotationResult{}, nil
}
func (s *StubRepository) SetRetention(quotaMB, keepMin int) {}
func (s *StubRepository) SaveDailyLog(ctx context.Context, entry domain.DailyLog) error {
	return nil
}
func (s *StubRepository) DailyLog(ctx context.Context, date string) (domain.DailyLog, error) {
	return domain.DailyLog{}, nil
}
func (s *StubRepository) ListDailyLogs(ctx context.Context) ([]string, error) {
	return nil, nil
}

type StubProvider struct{}

func (p *StubProvider) RequestAuthorization(ctx context.Context) error {
	return nil
}
func (p *StubProvider) ReadTodayStats(ctx context.Context) (domain.HealthStats, error) {
	return domain.HealthStats{
		Steps:           9500,
		Floors:          12,
		ActiveKcal:      520,
		ExerciseMinutes: 45,
		SleepHours:      7.5,
		HydrationLiters: 2,
	}, nil
}

func newService(b *testing.B) game.Service {
	b.Helper()
	svc := game.NewService(&StubRepository{}, engine.New(), &StubProvider{}, nil)
	if _, err := svc.Load(context.Background()); err != nil {
		b.Fatalf("Load failed: %v", err)
	}
	return svc
}

// --- Benchmark Functions ---

// BenchmarkRecordMeal measures one meal transition. The day is closed every ten meals
// so the open day stays a realistic size.
func BenchmarkRecordMeal(b *testing.B) {
	svc := newService(b)
	ctx := context.Background()
	text := "grilled salmon with salad and rice"
	input := domain.MealInput{Text: &text, KcalEstimate: 650}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.RecordMeal(ctx, input); err != nil {
			b.Fatalf("RecordMeal failed: %v", err)
		}
		if i%10 == 9 {
			b.StopTimer()
			if _, err := svc.CloseDay(ctx); err != nil {
				b.Fatalf("CloseDay failed: %v", err)
			}
			b.StartTimer()
		}
	}
}

// BenchmarkSyncHealth measures a provider read plus the journey advance.
func BenchmarkSyncHealth(b *testing.B) {
	svc := newService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.SyncHealth(ctx); err != nil {
			b.Fatalf("SyncHealth failed: %v", err)
		}
	}
}

// BenchmarkCloseDay measures the full daily close with three meals logged.
func BenchmarkCloseDay(b *testing.B) {
	svc := newService(b)
	ctx := context.Background()
	text := "pasta"
	input := domain.MealInput{Text: &text, KcalEstimate: 700}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j := 0; j < 3; j++ {
			if _, err := svc.RecordMeal(ctx, input); err != nil {
				b.Fatalf("RecordMeal failed: %v", err)
			}
		}
		b.StartTimer()

		if _, err := svc.CloseDay(ctx); err != nil {
			b.Fatalf("CloseDay failed: %v", err)
		}
	}
}

// BenchmarkEvaluateMeals measures scoring a busy day.
func BenchmarkEvaluateMeals(b *testing.B) {
	meals := make([]domain.Meal, 8)
	for i := range meals {
		meals[i] = domain.Meal{KcalEstimate: 300 + i*50}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.EvaluateMeals(meals)
	}
}
