package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

func day(n int) time.Time {
	return baseTime.Add(time.Duration(n) * 24 * time.Hour)
}

func TestRotate_BelowQuotaRemovesNothing(t *testing.T) {
	s := newTestStore(t, WithRetention(1, 30))
	for i := 0; i < 3; i++ {
		writeSized(t, s.Dir(), fmt.Sprintf("history/2024-05-0%d.json", i+1), 1000, day(i))
	}

	res, err := s.RotateStorageIfNeeded(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res.Removed)
	assert.Equal(t, int64(3000), res.UsedBefore)
}

func TestRotate_ZeroQuotaKeepOne(t *testing.T) {
	s := newTestStore(t, WithRetention(0, 1))
	paths := []string{
		writeSized(t, s.Dir(), "history/2024-05-02.json", 600, day(1)),
		writeSized(t, s.Dir(), "history/2024-05-01.json", 600, day(0)),
		writeSized(t, s.Dir(), "history/2024-05-03.json", 600, day(2)),
	}

	res, err := s.RotateStorageIfNeeded(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"history/2024-05-01.json"}, res.Removed)
	assert.Equal(t, int64(600), res.BytesFreed)
	assert.True(t, exists(paths[0]))
	assert.False(t, exists(paths[1]))
	assert.True(t, exists(paths[2]))
}

func TestRotate_FreesDownToNinetyPercent(t *testing.T) {
	// quota 1 MB; five 300 kB files put usage at 1.5 MB. Reaching 90% of the quota
	// (943,718 bytes) needs 556,282 bytes freed, which is two files.
	s := newTestStore(t, WithRetention(1, 10))
	for i := 0; i < 5; i++ {
		writeSized(t, s.Dir(), fmt.Sprintf("media/2024/05/0%d/report-%d.json", i+1, i), 300_000, day(i))
	}

	res, err := s.RotateStorageIfNeeded(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"media/2024/05/01/report-0.json",
		"media/2024/05/02/report-1.json",
	}, res.Removed)
	assert.Equal(t, int64(600_000), res.BytesFreed)
	assert.False(t, exists(filepath.Join(s.Dir(), "media/2024/05/01")), "emptied directories are pruned")
	assert.True(t, exists(filepath.Join(s.Dir(), "media/2024/05/03/report-2.json")))

	usage, err := s.CurrentUsage(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, usage.UsedBytes, int64(float64(usage.QuotaBytes)*RotationTargetRatio))
}

func TestRotate_DeletionCapFromKeepMin(t *testing.T) {
	tests := []struct {
		name        string
		keepMin     int
		wantRemoved int
	}{
		{"zero removes nothing", 0, 0},
		{"one", 1, 1},
		{"cap above need", 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, WithRetention(1, tt.keepMin))
			for i := 0; i < 5; i++ {
				writeSized(t, s.Dir(), fmt.Sprintf("history/2024-05-0%d.json", i+1), 300_000, day(i))
			}

			res, err := s.RotateStorageIfNeeded(context.Background())

			require.NoError(t, err)
			assert.Len(t, res.Removed, tt.wantRemoved)
		})
	}
}

func TestRotate_NeverRemovesCanonicalRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, WithRetention(0, 100))
	require.NoError(t, s.SaveState(ctx, domain.DefaultAppState()))
	canonical := filepath.Join(s.Dir(), CanonicalFile)
	require.NoError(t, osChtimes(canonical, day(-10)))

	writeSized(t, s.Dir(), "history/2024-05-01.json", 100, day(0))
	writeSized(t, s.Dir(), "history/2024-05-02.json", 100, day(1))

	res, err := s.RotateStorageIfNeeded(ctx)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"history/2024-05-01.json", "history/2024-05-02.json"}, res.Removed)
	assert.True(t, exists(canonical))

	state, err := s.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppState(), state)
}

func TestRotate_TiesBrokenByPath(t *testing.T) {
	s := newTestStore(t, WithRetention(0, 1))
	b := writeSized(t, s.Dir(), "history/b.json", 10, day(0))
	a := writeSized(t, s.Dir(), "history/a.json", 10, day(0))

	res, err := s.RotateStorageIfNeeded(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"history/a.json"}, res.Removed)
	assert.False(t, exists(a))
	assert.True(t, exists(b))
}

func TestRotate_ExportFolderIgnored(t *testing.T) {
	s := newTestStore(t, WithRetention(1, 10))
	export := writeSized(t, s.Dir(), "export/state.json", 2*1_048_576, day(0))
	writeSized(t, s.Dir(), "history/2024-05-01.json", 100, day(1))

	res, err := s.RotateStorageIfNeeded(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res.Removed)
	assert.True(t, exists(export))
}

func TestRotate_IdenticalInputsDeleteIdenticalPrefix(t *testing.T) {
	layout := func(t *testing.T) *Store {
		s := newTestStore(t, WithRetention(1, 10))
		sizes := []int{400_000, 100_000, 250_000, 350_000, 200_000}
		for i, size := range sizes {
			writeSized(t, s.Dir(), fmt.Sprintf("history/2024-05-0%d.json", i+1), size, day(len(sizes)-i))
		}
		return s
	}

	r1, err := layout(t).RotateStorageIfNeeded(context.Background())
	require.NoError(t, err)
	r2, err := layout(t).RotateStorageIfNeeded(context.Background())
	require.NoError(t, err)

	assert.Equal(t, r1.Removed, r2.Removed)
	// 1.3 MB used: the two oldest files free 550 kB, past the 356,282 bytes needed
	assert.Equal(t, []string{"history/2024-05-05.json", "history/2024-05-04.json"}, r1.Removed)
}

func TestSaveState_RotatesHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, WithRetention(0, 1))
	writeSized(t, s.Dir(), "history/2024-05-01.json", 50, day(0))
	writeSized(t, s.Dir(), "history/2024-05-02.json", 50, day(1))

	err := s.SaveState(ctx, domain.DefaultAppState())

	require.NoError(t, err)
	assert.False(t, exists(filepath.Join(s.Dir(), "history/2024-05-01.json")))
	assert.True(t, exists(filepath.Join(s.Dir(), "history/2024-05-02.json")))
	assert.False(t, errors.Is(err, ErrRotationAborted))
}
