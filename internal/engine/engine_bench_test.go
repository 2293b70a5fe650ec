package engine

import (
	"testing"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

func BenchmarkApplyHealthStats(b *testing.B) {
	e := New()
	stats := domain.HealthStats{Steps: 12000, Floors: 12, ActiveKcal: 600, ExerciseMinutes: 45, SleepHours: 9, HydrationLiters: 1.5}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = e.ApplyHealthStats(stats)
	}
}

func BenchmarkAdvanceJourney(b *testing.B) {
	s := domain.DefaultAppState()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, _ = AdvanceJourney(s, 7500)
	}
}
