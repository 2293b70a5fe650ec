package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/metrics"
	"github.com/osse101/HealthQuest_Go/internal/utils"
)

// SaveDailyLog writes history/<date>.json and runs a rotation pass.
// A log already written for the date is replaced.
func (s *Store) SaveDailyLog(ctx context.Context, entry domain.DailyLog) error {
	if _, err := time.Parse(domain.DateLayout, entry.Date); err != nil {
		return fmt.Errorf("%w: daily log date %q", domain.ErrInvalidInput, entry.Date)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	path := s.historyPath(entry.Date)
	if err := utils.SaveJSON(path, entry); err != nil {
		metrics.StorageErrors.WithLabelValues("history").Inc()
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	s.history.Add(entry.Date, entry.Clone())
	logger.FromContext(ctx).Debug("Saved daily log", "date", entry.Date)

	if _, err := s.rotateLocked(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRotationAborted, err)
	}
	return nil
}

// DailyLog returns the closed log for date (YYYY-MM-DD)
func (s *Store) DailyLog(ctx context.Context, date string) (domain.DailyLog, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.DailyLog{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", domain.ErrInvalidInput, date)
	}
	if cached, ok := s.history.Get(date); ok {
		return cached.Clone(), nil
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	var entry domain.DailyLog
	if err := utils.LoadJSON(s.historyPath(date), &entry); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DailyLog{}, fmt.Errorf("%w: no daily log for %s", domain.ErrNotFound, date)
		}
		logger.FromContext(ctx).Error("Failed to read daily log", "date", date, "error", err)
		return domain.DailyLog{}, fmt.Errorf("%w: %w", domain.ErrDeserialization, err)
	}
	s.history.Add(date, entry.Clone())
	return entry, nil
}

// ListDailyLogs returns the dates with a stored log, oldest first
func (s *Store) ListDailyLogs(_ context.Context) ([]string, error) {
	s.lock.RLock()
	entries, err := os.ReadDir(filepath.Join(s.dir, HistoryDir))
	s.lock.RUnlock()

	dates := []string{}
	if errors.Is(err, fs.ErrNotExist) {
		return dates, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list history: %w", domain.ErrIO, err)
	}
	for _, e := range entries {
		date, ok := strings.CutSuffix(e.Name(), ".json")
		if e.IsDir() || !ok {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, date); err == nil {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// SaveArtifact writes data to a path relative to the root and runs a rotation pass.
// Artifacts are rotation candidates; the canonical record and export folder are off limits.
func (s *Store) SaveArtifact(ctx context.Context, rel string, data []byte) (string, error) {
	rel = filepath.Clean(filepath.FromSlash(rel))
	if !filepath.IsLocal(rel) || rel == CanonicalFile || rel == ExportDir ||
		strings.HasPrefix(rel, ExportDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: artifact path %q", domain.ErrInvalidInput, rel)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	path := filepath.Join(s.dir, rel)
	if err := utils.WriteFileAtomic(path, data, filePerm); err != nil {
		metrics.StorageErrors.WithLabelValues("artifact").Inc()
		return "", fmt.Errorf("%w: write %s: %w", domain.ErrIO, path, err)
	}

	if _, err := s.rotateLocked(ctx); err != nil {
		return path, fmt.Errorf("%w: %w", ErrRotationAborted, err)
	}
	return path, nil
}

// MediaPath returns the relative media path for an artifact created at t
func MediaPath(t time.Time, name string) string {
	return filepath.ToSlash(filepath.Join(MediaDir, t.Format("2006"), t.Format("01"), t.Format("02"), name))
}

func (s *Store) historyPath(date string) string {
	return filepath.Join(s.dir, HistoryDir, date+".json")
}
