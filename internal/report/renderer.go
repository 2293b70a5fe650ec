package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/storage"
)

// Renderer turns a report into a stored snapshot and returns its path
type Renderer interface {
	SaveReportSnapshot(ctx context.Context, report domain.Report, date time.Time) (string, error)
}

// ArtifactWriter stores a file under the storage root. Implemented by *storage.Store.
type ArtifactWriter interface {
	SaveArtifact(ctx context.Context, rel string, data []byte) (string, error)
}

// FileRenderer writes JSON report snapshots into the media tree
type FileRenderer struct {
	writer ArtifactWriter
}

// NewFileRenderer creates a renderer backed by w
func NewFileRenderer(w ArtifactWriter) *FileRenderer {
	return &FileRenderer{writer: w}
}

// SaveReportSnapshot writes media/YYYY/MM/DD/report-<unix>.json for date.
// A failed rotation after the write still counts as saved.
func (r *FileRenderer) SaveReportSnapshot(ctx context.Context, report domain.Report, date time.Time) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encode %s report: %w", domain.ErrRender, report.Kind, err)
	}
	data = append(data, '\n')

	rel := storage.MediaPath(date, fmt.Sprintf("report-%d.json", date.Unix()))
	path, err := r.writer.SaveArtifact(ctx, rel, data)
	if err != nil {
		if errors.Is(err, storage.ErrRotationAborted) {
			logger.FromContext(ctx).Warn("Report saved but rotation failed", "path", path, "error", err)
			return path, nil
		}
		return "", fmt.Errorf("%w: %w", domain.ErrRender, err)
	}
	return path, nil
}

// Summary is a one-line human readable description of the report
func Summary(r domain.Report) string {
	switch r.Kind {
	case domain.ReportBattle:
		return fmt.Sprintf("%s: %s at %.0f%% HP, avatar L%d (%d/%d HP)",
			r.Date, r.BossName, r.BossHP*100, r.Level, r.HPCurrent, r.HPMax)
	default:
		return fmt.Sprintf("%s: %d steps in %s, heading to %s",
			r.Date, r.StepsToday, r.Environment, r.Destination)
	}
}
