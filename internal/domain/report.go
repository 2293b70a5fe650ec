package domain

import "time"

// ReportKind names the scheduled daily reports
type ReportKind string

const (
	ReportRoute  ReportKind = "route"
	ReportBattle ReportKind = "battle"
)

// Report is the renderable summary handed to the snapshot renderer
type Report struct {
	Kind        ReportKind `json:"kind"`
	Date        string     `json:"date"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Level       int        `json:"level"`
	XP          int        `json:"xp"`
	HPCurrent   int        `json:"hpCurrent"`
	HPMax       int        `json:"hpMax"`
	BossName    string     `json:"bossName"`
	BossHP      float64    `json:"bossHpPercent"`
	Environment string     `json:"environment"`
	Destination string     `json:"currentDestination"`
	StepsToday  int        `json:"stepsToday"`
	Badge       Badge      `json:"badgeDaily,omitempty"`
}

// StorageUsage is the result of a usage scan
type StorageUsage struct {
	UsedBytes  int64 `json:"usedBytes"`
	QuotaBytes int64 `json:"quotaBytes"`
}

// RotationResult describes one rotation pass
type RotationResult struct {
	Removed    []string `json:"removed"`
	BytesFreed int64    `json:"bytesFreed"`
	UsedBefore int64    `json:"usedBefore"`
	QuotaBytes int64    `json:"quotaBytes"`
}
