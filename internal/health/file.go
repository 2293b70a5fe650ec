package health

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/utils"
)

// FileProvider reads statistics from a health export file written by another tool.
// JSON files are decoded as JSON; anything else is read as YAML.
//
// The document holds the stats fields at the top level plus an optional "date"
// (YYYY-MM-DD). A dated document for another day counts as unavailable.
type FileProvider struct {
	path string
	now  func() time.Time
}

type fileDocument struct {
	Date               string `json:"date" yaml:"date"`
	domain.HealthStats `yaml:",inline"`
}

// NewFileProvider creates a provider reading path
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path, now: time.Now}
}

// RequestAuthorization checks the file can be opened for reading
func (p *FileProvider) RequestAuthorization(ctx context.Context) error {
	f, err := os.Open(p.path)
	if err != nil {
		return p.classify(ctx, err)
	}
	return f.Close()
}

// ReadTodayStats decodes the file and checks it describes today
func (p *FileProvider) ReadTodayStats(ctx context.Context) (domain.HealthStats, error) {
	var doc fileDocument
	if err := p.decode(&doc); err != nil {
		return domain.HealthStats{}, p.classify(ctx, err)
	}

	if today := p.now().Format(domain.DateLayout); doc.Date != "" && doc.Date != today {
		return domain.HealthStats{}, fmt.Errorf("%w: %s holds %s, not %s", domain.ErrDataUnavailable, p.path, doc.Date, today)
	}
	return doc.HealthStats, nil
}

func (p *FileProvider) decode(doc *fileDocument) error {
	if strings.EqualFold(filepath.Ext(p.path), ".json") {
		return utils.LoadJSON(p.path, doc)
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, doc)
}

// classify maps file errors onto the provider error taxonomy
func (p *FileProvider) classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", domain.ErrDataUnavailable, p.path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", domain.ErrAuthorization, p.path, err)
	default:
		logger.FromContext(ctx).Warn("Health file unreadable", "path", p.path, "error", err)
		return fmt.Errorf("%w: %s: %w", domain.ErrDataUnavailable, p.path, err)
	}
}
