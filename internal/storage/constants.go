package storage

import "time"

// Layout under the storage root
const (
	CanonicalFile = "state.json"
	HistoryDir    = "history"
	MediaDir      = "media"
	ExportDir     = "export"
	ExportJSON    = "state.json"
	ExportYAML    = "state.yaml"
)

// RotationTargetRatio is the share of the quota a rotation pass frees down to
const RotationTargetRatio = 0.9

// History cache defaults
const (
	DefaultHistoryCacheSize = 64
	DefaultHistoryCacheTTL  = 10 * time.Minute
)

const filePerm = 0o600
