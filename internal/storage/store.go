// Package storage persists the canonical AppState record and its historical artifacts
// under a single directory, enforcing a size quota by rotating the oldest artifacts.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HealthQuest_Go/internal/concurrency"
	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/metrics"
	"github.com/osse101/HealthQuest_Go/internal/utils"
	"github.com/osse101/HealthQuest_Go/internal/validation"
)

// ErrRotationAborted marks a save whose record was written but whose rotation pass failed.
var ErrRotationAborted = errors.New("rotation aborted")

// Store is the storage engine for one directory. All mutating operations hold the
// directory's write lock; reads share it.
type Store struct {
	dir       string
	canonical string
	lock      *sync.RWMutex

	cfgMu   sync.Mutex
	quotaMB int
	keepMin int

	schema    validation.SchemaValidator
	validator *validation.Validator
	history   *expirable.LRU[string, domain.DailyLog]
}

// Option configures a Store
type Option func(*Store)

// WithRetention sets the initial quota and rotation cap
func WithRetention(quotaMB, keepMin int) Option {
	return func(s *Store) {
		s.quotaMB = quotaMB
		s.keepMin = keepMin
	}
}

// WithHistoryCache sizes the daily-log read cache
func WithHistoryCache(size int, ttl time.Duration) Option {
	return func(s *Store) {
		s.history = expirable.NewLRU[string, domain.DailyLog](size, nil, ttl)
	}
}

// New opens (creating if needed) the storage directory
func New(dir string, opts ...Option) (*Store, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create storage dir %s: %w", domain.ErrIO, dir, err)
	}

	defaults := domain.DefaultSettings()
	s := &Store{
		dir:       dir,
		canonical: filepath.Join(dir, CanonicalFile),
		lock:      concurrency.Directories.GetLock(dir),
		quotaMB:   defaults.StorageQuotaMB,
		keepMin:   defaults.KeepDaysMin,
		schema:    validation.NewSchemaValidator(),
		validator: validation.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.history == nil {
		s.history = expirable.NewLRU[string, domain.DailyLog](DefaultHistoryCacheSize, nil, DefaultHistoryCacheTTL)
	}
	return s, nil
}

// Dir returns the storage root
func (s *Store) Dir() string {
	return s.dir
}

// SetRetention applies new quota and rotation settings to subsequent passes
func (s *Store) SetRetention(quotaMB, keepMin int) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.quotaMB = max(0, quotaMB)
	s.keepMin = max(0, keepMin)
}

// Retention returns the current quota in MB and rotation cap
func (s *Store) Retention() (quotaMB, keepMin int) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	return s.quotaMB, s.keepMin
}

// LoadState returns the canonical record, or the default state when none exists
func (s *Store) LoadState(ctx context.Context) (domain.AppState, error) {
	log := logger.FromContext(ctx)

	s.lock.RLock()
	data, err := os.ReadFile(s.canonical)
	s.lock.RUnlock()

	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("No canonical record, using defaults", "dir", s.dir)
		return domain.DefaultAppState(), nil
	}
	if err != nil {
		metrics.StorageErrors.WithLabelValues("load").Inc()
		log.Error("Failed to read canonical record", "path", s.canonical, "error", err)
		return domain.AppState{}, fmt.Errorf("%w: read %s: %w", domain.ErrIO, s.canonical, err)
	}

	state, err := decodeState(data)
	if err != nil {
		metrics.StorageErrors.WithLabelValues("load").Inc()
		log.Error("Failed to decode canonical record", "path", s.canonical, "error", err)
		return domain.AppState{}, err
	}
	return state, nil
}

// SaveState atomically replaces the canonical record, then runs a rotation pass under
// the same lock. A rotation failure is reported wrapped in ErrRotationAborted; the
// record itself is already durable at that point.
func (s *Store) SaveState(ctx context.Context, state domain.AppState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := utils.WriteFileAtomic(s.canonical, data, filePerm); err != nil {
		metrics.StorageErrors.WithLabelValues("save").Inc()
		logger.FromContext(ctx).Error("Failed to write canonical record", "path", s.canonical, "error", err)
		return fmt.Errorf("%w: write %s: %w", domain.ErrIO, s.canonical, err)
	}

	if _, err := s.rotateLocked(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRotationAborted, err)
	}
	return nil
}

// ImportState validates data as a complete record and replaces the canonical record
// with it. Nothing is merged.
func (s *Store) ImportState(ctx context.Context, data []byte) error {
	if err := s.schema.ValidateState(data); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeserialization, err)
	}
	state, err := decodeState(data)
	if err != nil {
		return err
	}
	if err := s.validator.ValidateState(state); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeserialization, err)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := utils.WriteFileAtomic(s.canonical, data, filePerm); err != nil {
		metrics.StorageErrors.WithLabelValues("import").Inc()
		return fmt.Errorf("%w: write %s: %w", domain.ErrIO, s.canonical, err)
	}
	logger.FromContext(ctx).Info("Imported state record", "bytes", len(data))
	return nil
}

// ExportState returns the canonical record bytes as stored
func (s *Store) ExportState(_ context.Context) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.readCanonical()
}

// ExportStateYAML renders the canonical record as YAML
func (s *Store) ExportStateYAML(ctx context.Context) (string, error) {
	data, err := s.ExportState(ctx)
	if err != nil {
		return "", err
	}
	return EncodeYAML(data)
}

// ExportFormat selects the on-demand export encoding
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

// ParseExportFormat accepts "json" (the default when empty), "yaml" or "yml"
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", domain.ErrInvalidInput, s)
}

// ExportToFolder writes an on-demand snapshot into the export folder and returns its path.
// The export folder is outside rotation and usage accounting.
func (s *Store) ExportToFolder(ctx context.Context, format ExportFormat) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := s.readCanonical()
	if err != nil {
		return "", err
	}

	name := ExportJSON
	if format == FormatYAML {
		out, err := EncodeYAML(data)
		if err != nil {
			return "", err
		}
		data = []byte(out)
		name = ExportYAML
	}

	path := filepath.Join(s.dir, ExportDir, name)
	if err := utils.WriteFileAtomic(path, data, filePerm); err != nil {
		metrics.StorageErrors.WithLabelValues("export").Inc()
		return "", fmt.Errorf("%w: write %s: %w", domain.ErrIO, path, err)
	}
	logger.FromContext(ctx).Info("Exported state", "path", path, "format", string(format))
	return path, nil
}

// CurrentUsage sums the sizes of every file under the root except the export folder
func (s *Store) CurrentUsage(_ context.Context) (domain.StorageUsage, error) {
	quotaMB, _ := s.Retention()

	s.lock.RLock()
	_, total, err := s.scan()
	s.lock.RUnlock()
	if err != nil {
		return domain.StorageUsage{}, fmt.Errorf("%w: scan %s: %w", domain.ErrIO, s.dir, err)
	}

	metrics.StorageUsedBytes.Set(float64(total))
	return domain.StorageUsage{UsedBytes: total, QuotaBytes: int64(quotaMB) * domain.BytesPerMB}, nil
}

// CheckHealth reports whether the storage root still exists as a directory
func (s *Store) CheckHealth(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("%w: stat %s: %w", domain.ErrIO, s.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrIO, s.dir)
	}
	return nil
}

func (s *Store) readCanonical() ([]byte, error) {
	data, err := os.ReadFile(s.canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrIO, s.canonical, err)
	}
	return data, nil
}
