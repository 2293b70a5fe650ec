package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

func sampleLog(date string) domain.DailyLog {
	return domain.DailyLog{
		Date:        date,
		Meals:       []domain.Meal{{ID: "m1", Time: baseTime, KcalEstimate: 1700, Quality: domain.MealNeutral}},
		HealthStats: domain.HealthStats{Steps: 8000, SleepHours: 7.5, HydrationLiters: 1.2},
		BadgeDaily:  domain.BadgeEquilibrist,
		TotalKcal:   1700,
		ClosedAt:    baseTime,
	}
}

func TestStore_DailyLogs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SaveDailyLog(ctx, sampleLog("2024-05-02")))
	require.NoError(t, s.SaveDailyLog(ctx, sampleLog("2024-05-01")))

	t.Run("list is sorted", func(t *testing.T) {
		dates, err := s.ListDailyLogs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, dates)
	})

	t.Run("read back", func(t *testing.T) {
		got, err := s.DailyLog(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, sampleLog("2024-05-01"), got)
	})

	t.Run("read from disk bypassing the cache", func(t *testing.T) {
		fresh, err := New(s.Dir())
		require.NoError(t, err)
		got, err := fresh.DailyLog(ctx, "2024-05-02")
		require.NoError(t, err)
		assert.Equal(t, sampleLog("2024-05-02"), got)
	})

	t.Run("cached copies are isolated", func(t *testing.T) {
		got, err := s.DailyLog(ctx, "2024-05-01")
		require.NoError(t, err)
		got.Meals[0].KcalEstimate = 1

		again, err := s.DailyLog(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, 1700, again.Meals[0].KcalEstimate)
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := s.DailyLog(ctx, "2023-01-01")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := s.DailyLog(ctx, "../state")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		err = s.SaveDailyLog(ctx, sampleLog("May 1st"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestStore_ListDailyLogs_Empty(t *testing.T) {
	s := newTestStore(t)
	writeSized(t, s.Dir(), "history/notes.txt", 10, baseTime)

	dates, err := s.ListDailyLogs(context.Background())

	require.NoError(t, err)
	assert.Empty(t, dates)
	assert.NotNil(t, dates)
}

func TestStore_RotationEvictsCachedLog(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, WithHistoryCache(8, time.Hour))
	require.NoError(t, s.SaveDailyLog(ctx, sampleLog("2024-05-01")))
	old := baseTime.Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(s.Dir(), "history", "2024-05-01.json"), old, old))

	_, err := s.DailyLog(ctx, "2024-05-01")
	require.NoError(t, err)

	s.SetRetention(0, 1)
	res, err := s.RotateStorageIfNeeded(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"history/2024-05-01.json"}, res.Removed)

	_, err = s.DailyLog(ctx, "2024-05-01")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SaveArtifact(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	when := time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC)

	rel := MediaPath(when, "report-1715382000.json")
	assert.Equal(t, "media/2024/05/10/report-1715382000.json", rel)

	path, err := s.SaveArtifact(ctx, rel, []byte(`{"kind":"battle"}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "media", "2024", "05", "10", "report-1715382000.json"), path)
	assert.True(t, exists(path))

	for _, bad := range []string{"../outside.json", "/etc/passwd", CanonicalFile, "export/state.json", "export"} {
		_, err := s.SaveArtifact(ctx, bad, []byte("x"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}
