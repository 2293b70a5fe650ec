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
)

type fileEntry struct {
	path    string
	rel     string
	size    int64
	modTime time.Time
}

// RotateStorageIfNeeded runs one rotation pass under the directory's write lock
func (s *Store) RotateStorageIfNeeded(ctx context.Context) (domain.RotationResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.rotateLocked(ctx)
}

// rotateLocked deletes the oldest artifacts once usage exceeds the quota, aiming for
// RotationTargetRatio of the quota. At most keepMin files are removed in one pass and the
// canonical record is never a candidate. Files are ordered by modification time, then
// path. The caller holds the write lock.
func (s *Store) rotateLocked(ctx context.Context) (domain.RotationResult, error) {
	quotaMB, keepMin := s.Retention()
	quota := int64(quotaMB) * domain.BytesPerMB

	files, total, err := s.scan()
	if err != nil {
		metrics.StorageErrors.WithLabelValues("rotate").Inc()
		return domain.RotationResult{}, fmt.Errorf("%w: scan %s: %w", domain.ErrIO, s.dir, err)
	}
	metrics.StorageUsedBytes.Set(float64(total))

	result := domain.RotationResult{Removed: []string{}, UsedBefore: total, QuotaBytes: quota}
	if total <= quota {
		return result, nil
	}

	candidates := files[:0]
	for _, f := range files {
		if f.path != s.canonical {
			candidates = append(candidates, f)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].modTime.Equal(candidates[j].modTime) {
			return candidates[i].modTime.Before(candidates[j].modTime)
		}
		return candidates[i].rel < candidates[j].rel
	})

	bytesToFree := total - int64(float64(quota)*RotationTargetRatio)
	log := logger.FromContext(ctx)

	var rotateErr error
	for _, f := range candidates {
		if len(result.Removed) >= keepMin {
			break
		}
		if err := os.Remove(f.path); err != nil {
			metrics.StorageErrors.WithLabelValues("rotate").Inc()
			log.Error("Rotation aborted", "path", f.rel, "error", err)
			rotateErr = fmt.Errorf("%w: remove %s: %w", domain.ErrIO, f.rel, err)
			break
		}
		s.forget(f.rel)
		s.pruneEmptyParents(f.path)
		result.Removed = append(result.Removed, f.rel)
		result.BytesFreed += f.size
		bytesToFree -= f.size
		if bytesToFree <= 0 {
			break
		}
	}

	if n := len(result.Removed); n > 0 {
		metrics.StorageRotations.Inc()
		metrics.StorageFilesRotated.Add(float64(n))
		metrics.StorageBytesFreed.Add(float64(result.BytesFreed))
		metrics.StorageUsedBytes.Set(float64(total - result.BytesFreed))
		log.Info("Rotated storage",
			"files_removed", n,
			"bytes_freed", result.BytesFreed,
			"used_before", total,
			"quota_bytes", quota)
	}
	return result, rotateErr
}

// scan lists every non-directory entry under the root, skipping the export folder
func (s *Store) scan() ([]fileEntry, int64, error) {
	var files []fileEntry
	var total int64
	exportPath := filepath.Join(s.dir, ExportDir)

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.dir && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() {
			if path == exportPath {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		files = append(files, fileEntry{
			path:    path,
			rel:     filepath.ToSlash(rel),
			size:    info.Size(),
			modTime: info.ModTime(),
		})
		total += info.Size()
		return nil
	})
	return files, total, err
}

// forget drops a rotated daily log from the read cache
func (s *Store) forget(rel string) {
	if date, ok := strings.CutPrefix(rel, HistoryDir+"/"); ok {
		s.history.Remove(strings.TrimSuffix(date, ".json"))
	}
}

// pruneEmptyParents removes directories left empty by a deletion, stopping at the root
func (s *Store) pruneEmptyParents(path string) {
	for dir := filepath.Dir(path); dir != s.dir && strings.HasPrefix(dir, s.dir); dir = filepath.Dir(dir) {
		if err := os.Remove(dir); err != nil {
			return
		}
	}
}
