package storage_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/storage"
)

func busyState() domain.AppState {
	state := domain.DefaultAppState()
	for i := 0; i < 40; i++ {
		state.Avatar.Inventory.Add(domain.Item{
			ID:   fmt.Sprintf("item-%d", i),
			Name: domain.LootPotion,
			Kind: domain.ItemKindArtifact,
		})
	}
	day := domain.NewDayProgress(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	state.Today = &day
	return state
}

// BenchmarkSaveState measures an atomic write of the canonical record plus the
// rotation scan that follows it.
func BenchmarkSaveState(b *testing.B) {
	store, err := storage.New(b.TempDir())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()
	state := busyState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		state.Avatar.XP = i
		if err := store.SaveState(ctx, state); err != nil {
			b.Fatalf("SaveState failed: %v", err)
		}
	}
}

// BenchmarkLoadState measures read, schema migration and repair of the canonical record.
func BenchmarkLoadState(b *testing.B) {
	store, err := storage.New(b.TempDir())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()
	if err := store.SaveState(ctx, busyState()); err != nil {
		b.Fatalf("SaveState failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.LoadState(ctx); err != nil {
			b.Fatalf("LoadState failed: %v", err)
		}
	}
}

// BenchmarkExportStateYAML measures the YAML rendering of the canonical record.
func BenchmarkExportStateYAML(b *testing.B) {
	store, err := storage.New(b.TempDir())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()
	if err := store.SaveState(ctx, busyState()); err != nil {
		b.Fatalf("SaveState failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.ExportStateYAML(ctx); err != nil {
			b.Fatalf("ExportStateYAML failed: %v", err)
		}
	}
}
